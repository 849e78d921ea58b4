package answer

// Form is a static active-form context: the languages a form declares, the
// language currently selected and the folder holding its media files.
type Form struct {
	Title       string
	Languages   []string
	Language    string
	MediaFolder string
}

func (f Form) DeclaredLanguages() []string { return f.Languages }

func (f Form) CurrentLanguage() string { return f.Language }

func (f Form) MediaFolderPath() string { return f.MediaFolder }

// Package itemset stores the itemsets.csv tables bundled with form media and
// resolves item codes to their labels. Tables are keyed by the md5 of
// `<mediaFolder>/itemsets.csv`, so several forms can share one database.
package itemset

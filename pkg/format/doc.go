// Package format turns typed answers into the text shown to data collectors.
//
// Format applies the first matching rule, in this order:
//
//  1. selection lists join their labels with ", ", ranked lists prefix each
//     entry with its 1-based position ("1. ");
//  2. date-times go through the date formatter with the time of day;
//  3. dates go through the same formatter without it, both honouring the
//     date picker parts of the appearance;
//  4. any answer whose appearance contains `thousands-sep` is parsed as a
//     decimal and grouped in threes with `.` as the decimal marker;
//  5. itemset codes on text questions with a `query` attribute are resolved
//     through the item lookup;
//  6. everything else renders its raw text.
//
// Parse failures never reach the caller: they are logged and the raw text is
// returned instead.
package format

// Package selector resolves which context label to activate.
//
// A label given on the command line is used verbatim. Otherwise the labels
// are presented as a numbered list and the user is prompted until a valid
// number is entered:
//
//	Available contexts:
//	1. dev
//	2. prod
//	Choose a context (enter the number): 2
//
// Invalid or out-of-range input re-prompts without limit. The prompt ends
// early only when the input stream is closed.
package selector

// Package match folds config identifiers into registry key form and ranks
// "did you mean" candidates for keys the registry does not know.
//
// Key functions:
//   - NormalizeKey: folds a config identifier into registry key form
//   - Distance: edit distance that counts an adjacent swap as one edit
//   - Suggest: ranks known keys closest to an unknown one
package match

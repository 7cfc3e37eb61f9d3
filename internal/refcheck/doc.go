// Package refcheck finds hard-coded references to the source database left
// in an assembled script. Such references tie the script to one environment,
// so each affected object is reported with the offending lines and a short
// snippet of surrounding context.
package refcheck

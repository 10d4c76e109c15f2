// Package preflight provides readiness checks for the external tool and
// filesystem paths that stitch depends on.
//
// The CLI "stitch status" command runs every check and renders the results
// as a table so a failing environment can be diagnosed before a combine run
// is attempted.
package preflight

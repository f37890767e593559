// Package csvio adapts the ledger to its CSV wire format.
//
// It decodes transaction record files and renders the final account report.
// Neither direction carries ledger state of its own: any decode failure is
// fatal to the whole run, by design, before ledger state is built.
package csvio

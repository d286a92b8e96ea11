// Package services implements the driving ports. The convert service
// orchestrates the pipeline: load raw texts, tokenize them into
// documents, serialize the corpus in vertical format, and materialize
// the engine's on-disk layout.
package services

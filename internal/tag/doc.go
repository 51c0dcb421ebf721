// Package tag decodes HDF4 tagged payloads.
//
// Every DD record names a tag id, and the payload it points at is interpreted
// according to that id. [Decode] maps an id and payload to one of a closed set
// of [Tag] variants:
//
//   - [Null] (DFTAG_NULL, 1): an unused record. The payload is ignored.
//   - [Version] (DFTAG_VERSION, 30): library version numbers and a text field.
//   - [NumberType] (DFTAG_NT, 106): four single-byte number type fields.
//   - [ScientificDataDimension] (DFTAG_SDD, 701): dimension sizes plus
//     references to the number type and scale records.
//   - [FileIdentifier] (DFTAG_FID, 100): declared for callers, not produced by
//     Decode. Records with this id decode as [Unknown].
//
// Three diagnostic variants describe records that could not be decoded:
//
//   - [Unknown]: an id outside the recognized set. The payload is copied.
//   - [Corrupt]: a recognized id whose payload failed validation.
//   - [Invalid]: a record whose declared payload range lies outside the file.
//
// Decode never fails and never reads outside the payload slice it is given.
//
// References between records ([Ref]) are plain (tag, ref) values. Nothing in
// this package resolves them.
package tag

// Package expand holds the dialect normalizers: small recursive grammars that
// turn one declared shorthand shape (string, mapping, sequence, or fixed-arity
// tuple) into one canonical output shape. Shared policies across dialects:
// string input is the most specific shorthand, mapping input is
// almost-canonical passthrough, and sequence input means "normalize every
// element and flatten", except where a fixed-arity tuple is given special
// meaning. Any other shape fails fast with an unknown_shape issue naming the
// dialect and the offending value.
package expand

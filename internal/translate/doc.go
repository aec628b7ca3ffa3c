// Package translate decodes raw provider frames into normalized tick events.
//
// Decoding is best-effort and never fails the stream: malformed or
// unrecognized frames come back as Unrecognized and the caller drops them.
// Frame types are selected by the provider's "T" discriminator:
//   - "t"       trade
//   - "q"       quote
//   - "success" control acknowledgement (auth/subscribe)
package translate

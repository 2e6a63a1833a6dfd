// Package huffcode implements classical Huffman coding over explicit code
// trees: tree construction from a weighted alphabet, codeword derivation by
// tree traversal, encoding and decoding of symbol sequences, and the
// information-theoretic metrics used to judge a code (average codeword
// length, entropy, redundancy, and the Kraft sum).
//
// Codewords and encoded sequences are represented as strings of the literal
// characters '0' and '1', not as packed bits.  This keeps encoded output
// directly readable and writable as plain text.
//
// References:
//
//     D. A. Huffman, "A Method for the Construction of Minimum-Redundancy
//     Codes", Proceedings of the IRE 40 (9), 1952
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffcode

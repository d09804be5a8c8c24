/*
Package caseless implements Unicode caseless matching.

Description

From the Unicode Standard, section 3.13 (Default Case Algorithms):

Case-insensitive string comparisons are one of the most common
string operations. [...] Caseless matching is specified in terms of
case folding, a transformation of a string that erases case
distinctions, and normalization, which erases differences in the
choice of Unicode encoding sequence for the same text element.

Package caseless provides the three caseless matching flavors the
standard defines:

▪︎ Default caseless matching folds both operands and compares the
folded code-point sequences. It is oblivious to normalization forms,
i.e. a pre-composed character will not match its combining-mark
spelling.

▪︎ Canonical caseless matching normalizes (NFD) before and after
folding, and thus identifies canonically equivalent strings.

▪︎ Compatibility caseless matching additionally applies compatibility
decomposition (NFKD), identifying e.g. a squared-unit symbol like '㎒'
with the letter sequence "MHz".

All operations work on streams of code points (io.RuneReader) and pull
one code point at a time; no operation materializes a transformed copy
of its input, except for the convenience function FoldString.
Convenience wrappers for Go strings are provided for all matching
operations.

Case folding is locale-independent: the Turkish/Azeri dotted and
dotless 'i' mappings are not applied. Input is assumed to consist of
well-formed Unicode scalar values.

BSD License

Copyright (c) 2017–21, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package caseless

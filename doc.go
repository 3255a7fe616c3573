/*
Package scdump decodes the Supercell-style "SC"/"CSV"/"SCTX"/"KTX" asset
container family used by several mobile games: compressed tabular blobs and
tagged-chunk texture containers.

High-level usage:
  - DecodeFile classifies a raw file blob, decompresses/walks it as needed, and
    emits zero or more Outputs (PNG rasters or raw table bytes).
  - Lower-level pieces (Cursor, Dispatch, WalkChunks, DecodePixels, ...) are
    exported for callers that want to drive the pipeline by hand.

File structure (simplified), outer envelope:

	['S' 'C'] [version_major u32be] [version_minor u32be] [hash_length u32be] [hash] [compressed payload]

The compressed payload is LZMA ("alone" header, legacy 32-bit size spliced to
64-bit), LZHAM ("SCLZ" magic), or Zstd (standard frame magic). Decompressing it
yields a stream of tagged chunks:

	[tag u8] [size u32le] [body; size bytes]

Recognized tags are a closed set; inline texture tags (1, 24, 27, 28) carry a
sub_type/width/height header followed by raw pixels, tags 27/28 in 32x32
block-major order. Tag 45 embeds a KTX blob, tag 47 references a sibling SCTX
file by name, tags 8/12/49 carry no image.

Standalone CSV files are a single compressed blob (optionally preceded by a
68-byte "Sig:" signature prefix); standalone SCTX/KTX files are textures with
no outer envelope at all.
*/
package scdump

// Package nbt implements a codec for the NBT (Named Binary Tag) format,
// the tree-structured, length-prefixed binary format used by Minecraft.
//
// A Document is the ordered sequence of root-level tags decoded from one
// byte buffer. Each tag is one of a closed set of thirteen variants
// (ids 0x00 through 0x0c): scalar numerics, raw numeric arrays, UTF-8
// strings, and two recursive containers (List, Compound). Decoding and
// encoding pass through a fixed dispatch table keyed by the one-byte
// type id; containers recurse only through that table.
//
// Design goals:
//   - Paranoid bounds checking; never panic on malformed input.
//   - Byte-exact round trips, including IEEE-754 NaN payloads.
//   - Sentinel errors with stable categories (bounds/unsupported/length/...).
//   - No I/O, no logging, and no shared state in the codec itself;
//     gzip and file handling live in Load/Save, printing in nbt/printer.
//
// Decode and encode are pure, synchronous transforms. Independent
// buffers may be processed concurrently because no codec state is
// shared across calls.
package nbt

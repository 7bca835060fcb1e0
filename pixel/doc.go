// Package pixel describes packed 32-bit pixel memory that lives outside the Go heap,
// or at least outside the caller's ownership.
//
// A [View] is a plain descriptor: base address, width, height and stride in pixel
// elements. It owns nothing and copies nothing. The memory it points at belongs to
// whoever handed it out (a locked surface, a mmapped framebuffer, a slice) and is
// only valid for as long as that owner says so.
//
// A [Color] is a packed integer stored as-is. Its channel layout is a [Format],
// which the owner of the memory must report; this package never guesses.
package pixel

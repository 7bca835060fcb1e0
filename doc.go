// Package surfmanip writes packed pixels straight into surface memory owned by a host.
//
// The core is [WriteRegion]: given a [pixel.View] describing someone else's memory, it
// fills a clamped rectangle with one packed color using plain address arithmetic.
// There is no per-pixel clipping or allocation inside the loop.
//
// The rest of the package is host glue: the [Surface] and [Host] interfaces, the
// [WithLock] scope that guarantees a surface is unlocked again, an in-memory
// surface, and [Run], the lock/draw/unlock/flip/poll loop.
package surfmanip

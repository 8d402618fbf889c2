// Package secret wipes buffers that held private scalars, stretched keys or HMAC output.
//
// Every buffer that ever holds secret material must be passed to Wipe on every exit path of the
// scope that filled it, normally with defer. The zero-fill is delegated to memguard so that it is
// not eligible for dead-store elimination.
package secret

package render

// Texture is a backend-owned square 2D render-target texture with a single
// mip level. Concrete types belong to the backend that created them; other
// packages only size, inspect and release them.
type Texture interface {
	// Size returns the edge length in texels.
	Size() int
	// Format returns the texture format.
	Format() TextureFormat
	// Release frees the backing storage. Releasing twice is a no-op.
	Release()
}

package onestore

// Fuzz is a go-fuzz entry point exercising the full Packaging parse and
// root object-space assembly against an arbitrary byte buffer.
func Fuzz(data []byte) int {
	pkg, err := OpenBytes(data, Options{})
	if err != nil {
		return 0
	}
	defer pkg.Close()

	if err := pkg.Parse(); err != nil {
		return 0
	}
	if _, err := pkg.RootObjectSpace(); err != nil {
		return 0
	}
	return 1
}

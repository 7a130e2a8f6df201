// Package file reads text files from the local filesystem behind the narrow
// Reader interface, so that callers can substitute an in-memory reader in
// tests.
//
// LocalReader decodes file contents as UTF-8 by default. Any other encoding
// known to the WHATWG encoding registry (for example "windows-1252" or
// "iso-8859-1") can be selected with WithEncoding; bytes are transcoded to
// UTF-8 with golang.org/x/text.
//
//	r, err := file.NewLocalReader(file.WithBaseDir("/srv/orders"))
//	if err != nil {
//		return err
//	}
//	text, err := r.Read(ctx, "march.yaml")
//	if errors.Is(err, file.ErrFileNotFound) {
//		// the path does not exist
//	}
//
// When a base directory is configured every path is resolved inside it and
// attempts to escape it fail with ErrInvalidPath.
package file

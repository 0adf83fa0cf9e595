package traverse

// ContentReader is a function that reads file content given a file path.
// This allows the caller to control how files are read (filesystem, stubbed
// fixtures in tests, etc.)
type ContentReader func(filePath string) ([]byte, error)

package domain

const KB = 1024
const MB = KB * KB

// UploadConstraint bounds what the file mode accepts.
type UploadConstraint struct {
	AllowedExtension string
	MaxBytes         int64
}

var upload = UploadConstraint{
	AllowedExtension: ".txt",
	MaxBytes:         10 * MB,
}

// Upload returns the process-wide upload constraint. It is returned by
// value so callers cannot mutate it.
func Upload() UploadConstraint {
	return upload
}

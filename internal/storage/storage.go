package storage

import "context"

// UploadInput describes a file to place in the external storage service.
type UploadInput struct {
	Data     []byte
	PublicID string
	Folder   string
	MimeType string
}

// Object is a stored file reference plus its public URL.
type Object struct {
	PublicID  string
	SecureURL string
}

// Store is the contract with the external file-storage collaborator. Rename
// moves an object between keys atomically, which the document save flow relies
// on to promote files from the temporary folder to their permanent path.
type Store interface {
	Upload(ctx context.Context, in UploadInput) (*Object, error)
	Rename(ctx context.Context, fromPublicID, toPublicID string) (*Object, error)
}

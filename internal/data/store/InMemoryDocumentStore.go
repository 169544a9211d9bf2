package store

import (
	"context"
	"sync"

	"github.com/akolanti/lexgate/internal/domain/documentModel"
)

type InMemoryDocumentStore struct {
	lock       *sync.RWMutex
	workspaces map[string]map[string]documentModel.UploadedDocument
	blobs      map[string]documentModel.Blob
}

func InitInMemoryDocumentStore() *InMemoryDocumentStore {
	return &InMemoryDocumentStore{
		lock:       new(sync.RWMutex),
		workspaces: make(map[string]map[string]documentModel.UploadedDocument),
		blobs:      make(map[string]documentModel.Blob),
	}
}

func (store *InMemoryDocumentStore) CreateWorkspace(ctx context.Context, workspaceId string) error {
	store.lock.Lock()
	defer store.lock.Unlock()
	if _, ok := store.workspaces[workspaceId]; !ok {
		store.workspaces[workspaceId] = make(map[string]documentModel.UploadedDocument)
	}
	return nil
}

func (store *InMemoryDocumentStore) WorkspaceExists(ctx context.Context, workspaceId string) bool {
	store.lock.RLock()
	defer store.lock.RUnlock()
	_, ok := store.workspaces[workspaceId]
	return ok
}

func (store *InMemoryDocumentStore) DeleteWorkspace(ctx context.Context, workspaceId string) error {
	store.lock.Lock()
	defer store.lock.Unlock()
	delete(store.workspaces, workspaceId)
	return nil
}

func (store *InMemoryDocumentStore) SaveDocument(ctx context.Context, doc documentModel.UploadedDocument) error {
	store.lock.Lock()
	defer store.lock.Unlock()
	docs, ok := store.workspaces[doc.WorkspaceId]
	if !ok {
		return documentModel.ErrNotFound
	}
	docs[doc.Id] = doc
	return nil
}

func (store *InMemoryDocumentStore) UpdateDocument(ctx context.Context, doc documentModel.UploadedDocument) error {
	store.lock.Lock()
	defer store.lock.Unlock()
	if _, ok := store.workspaces[doc.WorkspaceId][doc.Id]; !ok {
		return documentModel.ErrNotFound
	}
	store.workspaces[doc.WorkspaceId][doc.Id] = doc
	return nil
}

func (store *InMemoryDocumentStore) GetDocument(ctx context.Context, workspaceId string, id string) (documentModel.UploadedDocument, error) {
	store.lock.RLock()
	defer store.lock.RUnlock()
	doc, ok := store.workspaces[workspaceId][id]
	if !ok {
		return doc, documentModel.ErrNotFound
	}
	return doc, nil
}

func (store *InMemoryDocumentStore) ListDocuments(ctx context.Context, workspaceId string) ([]documentModel.UploadedDocument, error) {
	store.lock.RLock()
	defer store.lock.RUnlock()
	docs := make([]documentModel.UploadedDocument, 0, len(store.workspaces[workspaceId]))
	for _, doc := range store.workspaces[workspaceId] {
		docs = append(docs, doc)
	}
	sortByCreation(docs)
	return docs, nil
}

func (store *InMemoryDocumentStore) DeleteDocument(ctx context.Context, workspaceId string, id string) error {
	store.lock.Lock()
	defer store.lock.Unlock()
	delete(store.workspaces[workspaceId], id)
	return nil
}

func (store *InMemoryDocumentStore) SaveBlob(ctx context.Context, token string, blob documentModel.Blob) error {
	store.lock.Lock()
	defer store.lock.Unlock()
	store.blobs[token] = blob
	return nil
}

func (store *InMemoryDocumentStore) GetBlob(ctx context.Context, token string) (documentModel.Blob, error) {
	store.lock.RLock()
	defer store.lock.RUnlock()
	blob, ok := store.blobs[token]
	if !ok {
		return blob, documentModel.ErrNotFound
	}
	return blob, nil
}

func (store *InMemoryDocumentStore) RevokeBlob(ctx context.Context, token string) error {
	store.lock.Lock()
	defer store.lock.Unlock()
	delete(store.blobs, token)
	return nil
}

// BlobCount is used by tests to assert previews are revoked.
func (store *InMemoryDocumentStore) BlobCount() int {
	store.lock.RLock()
	defer store.lock.RUnlock()
	return len(store.blobs)
}

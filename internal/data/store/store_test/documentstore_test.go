package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/akolanti/lexgate/internal/data/store"
	"github.com/akolanti/lexgate/internal/domain/documentModel"
)

func documentStores(t *testing.T) map[string]documentModel.DocumentStore {
	_, internalStore := newTestRedis(t)
	return map[string]documentModel.DocumentStore{
		"redis":    store.NewRedisDocumentStore(internalStore),
		"inMemory": store.InitInMemoryDocumentStore(),
	}
}

func TestDocumentStore_Lifecycle(t *testing.T) {
	for name, docStore := range documentStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			if err := docStore.CreateWorkspace(ctx, "ws-1"); err != nil {
				t.Fatalf("CreateWorkspace failed: %v", err)
			}
			if !docStore.WorkspaceExists(ctx, "ws-1") {
				t.Fatal("workspace should exist")
			}

			content := "hello"
			first := documentModel.UploadedDocument{Id: "d1", WorkspaceId: "ws-1", Name: "a.txt", Content: &content, CreatedAt: time.Now()}
			second := documentModel.UploadedDocument{Id: "d2", WorkspaceId: "ws-1", Name: "b.pdf", CreatedAt: time.Now().Add(time.Second)}
			for _, doc := range []documentModel.UploadedDocument{second, first} {
				if err := docStore.SaveDocument(ctx, doc); err != nil {
					t.Fatalf("SaveDocument failed: %v", err)
				}
			}

			docs, err := docStore.ListDocuments(ctx, "ws-1")
			if err != nil {
				t.Fatalf("ListDocuments failed: %v", err)
			}
			if len(docs) != 2 || docs[0].Id != "d1" || docs[1].Id != "d2" {
				t.Fatalf("expected d1,d2 in creation order, got %+v", docs)
			}

			got, err := docStore.GetDocument(ctx, "ws-1", "d1")
			if err != nil || got.Content == nil || *got.Content != "hello" {
				t.Fatalf("GetDocument = %+v, %v", got, err)
			}

			if err = docStore.DeleteDocument(ctx, "ws-1", "d1"); err != nil {
				t.Fatalf("DeleteDocument failed: %v", err)
			}
			if _, err = docStore.GetDocument(ctx, "ws-1", "d1"); !errors.Is(err, documentModel.ErrNotFound) {
				t.Errorf("expected ErrNotFound, got %v", err)
			}

			if err = docStore.DeleteWorkspace(ctx, "ws-1"); err != nil {
				t.Fatalf("DeleteWorkspace failed: %v", err)
			}
			if docStore.WorkspaceExists(ctx, "ws-1") {
				t.Error("workspace should be gone")
			}
			if _, err = docStore.GetDocument(ctx, "ws-1", "d2"); !errors.Is(err, documentModel.ErrNotFound) {
				t.Errorf("documents should go with the workspace, got %v", err)
			}
		})
	}
}

func TestDocumentStore_WritesNeedLiveRecords(t *testing.T) {
	for name, docStore := range documentStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			doc := documentModel.UploadedDocument{Id: "d1", WorkspaceId: "ws-1", Name: "a.txt", CreatedAt: time.Now()}

			if err := docStore.SaveDocument(ctx, doc); !errors.Is(err, documentModel.ErrNotFound) {
				t.Fatalf("SaveDocument without workspace = %v, want ErrNotFound", err)
			}
			if docStore.WorkspaceExists(ctx, "ws-1") {
				t.Fatal("a failed save must not create the workspace")
			}

			if err := docStore.CreateWorkspace(ctx, "ws-1"); err != nil {
				t.Fatal(err)
			}
			if err := docStore.UpdateDocument(ctx, doc); !errors.Is(err, documentModel.ErrNotFound) {
				t.Fatalf("UpdateDocument of a missing record = %v, want ErrNotFound", err)
			}
			if err := docStore.SaveDocument(ctx, doc); err != nil {
				t.Fatalf("SaveDocument failed: %v", err)
			}

			doc.Status = documentModel.StatusReady
			if err := docStore.UpdateDocument(ctx, doc); err != nil {
				t.Fatalf("UpdateDocument failed: %v", err)
			}
			if got, err := docStore.GetDocument(ctx, "ws-1", "d1"); err != nil || got.Status != documentModel.StatusReady {
				t.Fatalf("GetDocument = %+v, %v", got, err)
			}

			if err := docStore.DeleteWorkspace(ctx, "ws-1"); err != nil {
				t.Fatal(err)
			}
			if err := docStore.UpdateDocument(ctx, doc); !errors.Is(err, documentModel.ErrNotFound) {
				t.Errorf("UpdateDocument after workspace removal = %v, want ErrNotFound", err)
			}
			if docStore.WorkspaceExists(ctx, "ws-1") {
				t.Error("workspace should stay removed")
			}
		})
	}
}

func TestDocumentStore_BlobRevoke(t *testing.T) {
	for name, docStore := range documentStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			blob := documentModel.Blob{DocumentId: "d1", ContentType: "application/pdf", Data: []byte("%PDF-1.4")}
			if err := docStore.SaveBlob(ctx, "tok", blob); err != nil {
				t.Fatalf("SaveBlob failed: %v", err)
			}
			got, err := docStore.GetBlob(ctx, "tok")
			if err != nil || string(got.Data) != "%PDF-1.4" {
				t.Fatalf("GetBlob = %+v, %v", got, err)
			}
			if err = docStore.RevokeBlob(ctx, "tok"); err != nil {
				t.Fatalf("RevokeBlob failed: %v", err)
			}
			if _, err = docStore.GetBlob(ctx, "tok"); !errors.Is(err, documentModel.ErrNotFound) {
				t.Errorf("expected revoked blob to be gone, got %v", err)
			}
		})
	}
}

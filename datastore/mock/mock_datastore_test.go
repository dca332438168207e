/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package mock_test

import (
	"context"
	"sync"
	"testing"

	"github.com/suparena/registration/datastore"
	"github.com/suparena/registration/datastore/mock"
	"github.com/suparena/registration/errors"
	"github.com/suparena/registration/models"
)

type TestEntity struct {
	ID   string
	Name string
}

var _ datastore.DataStore[models.Registration] = (*mock.DataStore[models.Registration])(nil)

func TestMockDataStore(t *testing.T) {
	ctx := context.Background()

	t.Run("BasicOperations", func(t *testing.T) {
		// Create mock with custom key extractor
		mockStore := mock.New[TestEntity]().
			WithGetKeyFunc(func(e TestEntity) string { return e.ID })

		// Test Put
		entity := TestEntity{ID: "123", Name: "Test"}
		err := mockStore.Put(ctx, entity)
		if err != nil {
			t.Fatalf("Put failed: %v", err)
		}

		// Test GetOne
		retrieved, err := mockStore.GetOne(ctx, "123")
		if err != nil {
			t.Fatalf("GetOne failed: %v", err)
		}
		if retrieved.ID != "123" || retrieved.Name != "Test" {
			t.Fatalf("Retrieved entity mismatch: %+v", retrieved)
		}

		// Missing key
		_, err = mockStore.GetOne(ctx, "456")
		if !errors.IsNotFound(err) {
			t.Fatalf("Expected not found error, got: %v", err)
		}
	})

	t.Run("KeyMethod", func(t *testing.T) {
		mockStore := mock.New[models.Registration]()

		err := mockStore.Put(ctx, models.Registration{Email: "a@b.c", Name: "A"})
		if err != nil {
			t.Fatalf("Put failed: %v", err)
		}

		retrieved, err := mockStore.GetOne(ctx, "a@b.c")
		if err != nil {
			t.Fatalf("GetOne failed: %v", err)
		}
		if retrieved.Name != "A" {
			t.Fatalf("Expected name A, got %s", retrieved.Name)
		}
	})

	t.Run("Overwrite", func(t *testing.T) {
		mockStore := mock.New[models.Registration]()

		_ = mockStore.Put(ctx, models.Registration{Email: "a@b.c", Name: "first"})
		_ = mockStore.Put(ctx, models.Registration{Email: "a@b.c", Name: "second"})

		if mockStore.Count() != 1 {
			t.Fatalf("Expected count 1, got %d", mockStore.Count())
		}
		if mockStore.Puts() != 2 {
			t.Fatalf("Expected 2 puts, got %d", mockStore.Puts())
		}
		if got := mockStore.GetData()["a@b.c"].Name; got != "second" {
			t.Fatalf("Expected second write to win, got %s", got)
		}
	})

	t.Run("EmptyKey", func(t *testing.T) {
		mockStore := mock.New[models.Registration]()

		err := mockStore.Put(ctx, models.Registration{Name: "nobody"})
		if !errors.IsValidationError(err) {
			t.Fatalf("Expected validation error, got: %v", err)
		}
	})

	t.Run("ErrorSimulation", func(t *testing.T) {
		mockStore := mock.New[TestEntity]()

		// Simulate Put error
		putErr := errors.NewWriteError("PutItem", context.DeadlineExceeded)
		mockStore.WithPutError(putErr)

		err := mockStore.Put(ctx, TestEntity{ID: "123", Name: "Test"})
		if err != putErr {
			t.Fatalf("Expected put error, got: %v", err)
		}
		if mockStore.Count() != 0 {
			t.Fatalf("Failed put should not store anything")
		}

		// Simulate GetOne error
		getErr := errors.NewNotFoundError("TestEntity", "x")
		mockStore.WithGetError(getErr)

		_, err = mockStore.GetOne(ctx, "123")
		if err != getErr {
			t.Fatalf("Expected get error, got: %v", err)
		}
	})

	t.Run("HelperMethods", func(t *testing.T) {
		mockStore := mock.New[TestEntity]().
			WithGetKeyFunc(func(e TestEntity) string { return e.ID })

		// Test SetData
		testData := map[string]TestEntity{
			"1": {ID: "1", Name: "One"},
			"2": {ID: "2", Name: "Two"},
		}
		mockStore.SetData(testData)

		// Test Count
		if mockStore.Count() != 2 {
			t.Fatalf("Expected count 2, got %d", mockStore.Count())
		}

		// Test GetData
		data := mockStore.GetData()
		if len(data) != 2 {
			t.Fatalf("Expected 2 items in data, got %d", len(data))
		}

		// Test Clear
		mockStore.Clear()
		if mockStore.Count() != 0 {
			t.Fatalf("Expected count 0 after clear, got %d", mockStore.Count())
		}
	})
}

func TestMockDataStoreConcurrentPuts(t *testing.T) {
	ctx := context.Background()
	mockStore := mock.New[models.Registration]()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = mockStore.Put(ctx, models.Registration{Email: "same@example.com"})
		}()
	}
	wg.Wait()

	if mockStore.Count() != 1 {
		t.Fatalf("Expected a single record, got %d", mockStore.Count())
	}
	if mockStore.Puts() != 50 {
		t.Fatalf("Expected 50 puts, got %d", mockStore.Puts())
	}
}

package service

import (
	"context"
	"regexp"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/cjalex1313/trex-gym/internal/core/domain"
	"github.com/cjalex1313/trex-gym/internal/core/ports"
)

var pinShape = regexp.MustCompile(`^\d{6}$`)

func TestClientService_Create(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo, zerolog.Nop())

	result, err := svc.Create(context.Background(), ports.CreateClientInput{
		FirstName: "Alex",
		LastName:  "Popescu",
		Email:     "Alex.Popescu@Sample.Local",
		Phone:     "+40740000001",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if !pinShape.MatchString(result.GeneratedPin) {
		t.Fatalf("expected 6-digit pin, got %q", result.GeneratedPin)
	}
	if result.Client.Email != "alex.popescu@sample.local" {
		t.Fatalf("expected lowercased email, got %q", result.Client.Email)
	}
	if result.Client.Status != domain.ClientStatusInvited {
		t.Fatalf("expected default invited status, got %q", result.Client.Status)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(result.Client.PinHash), []byte(result.GeneratedPin)); err != nil {
		t.Fatalf("stored hash does not match generated pin: %v", err)
	}
	if result.Client.PinHash == result.GeneratedPin {
		t.Fatalf("pin stored in plaintext")
	}
}

func TestClientService_Create_DuplicateEmail(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo, zerolog.Nop())

	input := ports.CreateClientInput{FirstName: "A", LastName: "B", Email: "dup@sample.local", Phone: "+40740000001"}
	if _, err := svc.Create(context.Background(), input); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), input); err != domain.ErrEmailExists {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

func TestClientService_List_Defaults(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo, zerolog.Nop())

	page, err := svc.List(context.Background(), ports.ListClientsInput{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if page.Pagination.Page != 1 || page.Pagination.Limit != 10 {
		t.Fatalf("unexpected defaults: %+v", page.Pagination)
	}
	if page.Pagination.TotalPages != 1 {
		t.Fatalf("expected totalPages floor of 1, got %d", page.Pagination.TotalPages)
	}
}

func TestClientService_List_Pagination(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo, zerolog.Nop())

	for i := 0; i < 25; i++ {
		_, err := svc.Create(context.Background(), ports.CreateClientInput{
			FirstName: "Client",
			LastName:  string(rune('A' + i)),
			Email:     string(rune('a'+i)) + "@sample.local",
			Phone:     "+40740000001",
		})
		if err != nil {
			t.Fatalf("create %d failed: %v", i, err)
		}
	}

	page, err := svc.List(context.Background(), ports.ListClientsInput{Page: 3, Limit: 10})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(page.Items) != 5 {
		t.Fatalf("expected 5 items on last page, got %d", len(page.Items))
	}
	if page.Pagination.Total != 25 || page.Pagination.TotalPages != 3 {
		t.Fatalf("unexpected pagination: %+v", page.Pagination)
	}

	// Limit is clamped to 100.
	page, err = svc.List(context.Background(), ports.ListClientsInput{Limit: 500})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if page.Pagination.Limit != 100 {
		t.Fatalf("expected clamped limit 100, got %d", page.Pagination.Limit)
	}
}

func TestClientService_Update_LowercasesEmail(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CreateClientInput{
		FirstName: "Maria", LastName: "Ionescu", Email: "maria@sample.local", Phone: "+40740000002",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	email := "Maria.New@Sample.Local"
	updated, err := svc.Update(context.Background(), created.Client.ID, ports.UpdateClientInput{Email: &email})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Email != "maria.new@sample.local" {
		t.Fatalf("expected lowercased email, got %q", updated.Email)
	}
}

func TestClientService_Suspend(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CreateClientInput{
		FirstName: "Vlad", LastName: "Georgescu", Email: "vlad@sample.local", Phone: "+40740000003",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	client, err := svc.Suspend(context.Background(), created.Client.ID)
	if err != nil {
		t.Fatalf("suspend failed: %v", err)
	}
	if client.Status != domain.ClientStatusSuspended {
		t.Fatalf("expected suspended, got %q", client.Status)
	}

	// The document survives; suspension is not deletion.
	if _, err := svc.Get(context.Background(), created.Client.ID); err != nil {
		t.Fatalf("suspended client should still be readable: %v", err)
	}
}

func TestClientService_Get_NotFound(t *testing.T) {
	svc := NewClientService(newStubClientRepo(), zerolog.Nop())
	if _, err := svc.Get(context.Background(), "missing"); err != domain.ErrClientNotFound {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}

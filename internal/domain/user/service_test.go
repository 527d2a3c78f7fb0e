package user

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
)

type mockRepo struct {
	users map[uuid.UUID]*User
}

func newMockRepo() *mockRepo {
	return &mockRepo{users: make(map[uuid.UUID]*User)}
}

func (m *mockRepo) Create(_ context.Context, u *User) error {
	u.ID = uuid.New()
	m.users[u.ID] = u
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	return u, nil
}

func (m *mockRepo) GetByLogin(_ context.Context, login string) (*User, error) {
	for _, u := range m.users {
		if u.Login == login {
			return u, nil
		}
	}
	return nil, fmt.Errorf("not found")
}

func (m *mockRepo) Update(_ context.Context, u *User) error {
	m.users[u.ID] = u
	return nil
}

func (m *mockRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.users, id)
	return nil
}

func (m *mockRepo) List(_ context.Context, limit, offset int) ([]*User, int, error) {
	var result []*User
	for _, u := range m.users {
		result = append(result, u)
	}
	return result, len(result), nil
}

func TestCreateUser(t *testing.T) {
	svc := NewService(newMockRepo())
	ctx := context.Background()

	cases := []struct {
		name string
		u    User
	}{
		{"missing login", User{Name: "佐藤", Role: RoleNurse}},
		{"missing name", User{Login: "sato", Role: RoleNurse}},
		{"bad role", User{Login: "sato", Name: "佐藤", Role: "doctor"}},
	}
	for _, tc := range cases {
		if err := svc.Create(ctx, &tc.u); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}

	u := &User{Login: "sato", Name: "佐藤", Role: RoleNurse, IsActive: true}
	if err := svc.Create(ctx, u); err != nil {
		t.Fatal(err)
	}

	dup := &User{Login: "sato", Name: "別の佐藤", Role: RoleClerk}
	if err := svc.Create(ctx, dup); err == nil {
		t.Error("expected error for duplicate login")
	}
}

func TestUpdateUserKeepsOwnLogin(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	ctx := context.Background()

	u := &User{Login: "sato", Name: "佐藤", Role: RoleNurse}
	if err := svc.Create(ctx, u); err != nil {
		t.Fatal(err)
	}
	other := &User{Login: "suzuki", Name: "鈴木", Role: RoleAdmin}
	if err := svc.Create(ctx, other); err != nil {
		t.Fatal(err)
	}

	u.Name = "佐藤 改"
	if err := svc.Update(ctx, u); err != nil {
		t.Fatalf("update with unchanged login: %v", err)
	}

	u.Login = "suzuki"
	if err := svc.Update(ctx, u); err == nil {
		t.Error("expected error taking another user's login")
	}
}

package userModel

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strconv"
)

var (
	ErrUserExists   = errors.New("email already exists")
	ErrUserNotFound = errors.New("user not found")
)

type User struct {
	Id           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash,omitempty"`
}

// AuthToken is the cookie payload. It is not signed.
type AuthToken struct {
	UserId UserRef `json:"userId"`
	Email  string  `json:"email"`
}

// UserRef is the userId a cookie carries. Cookies minted here hold a number
// but any non-empty id is accepted. Empty means missing.
type UserRef string

func RefFromID(id int64) UserRef {
	return UserRef(strconv.FormatInt(id, 10))
}

// Int64 is 0 when the ref is not numeric.
func (r UserRef) Int64() int64 {
	id, _ := strconv.ParseInt(string(r), 10, 64)
	return id
}

func (r UserRef) MarshalJSON() ([]byte, error) {
	if _, err := strconv.ParseInt(string(r), 10, 64); err == nil {
		return []byte(r), nil
	}
	return json.Marshal(string(r))
}

// UnmarshalJSON keeps any truthy value. null, false, 0 and "" decode to empty.
func (r *UserRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0, bytes.Equal(data, []byte("null")), bytes.Equal(data, []byte("false")):
		*r = ""
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*r = UserRef(s)
	default:
		if n, err := strconv.ParseFloat(string(data), 64); err == nil && n == 0 {
			*r = ""
			return nil
		}
		*r = UserRef(data)
	}
	return nil
}

type UserStore interface {
	// CreateUser assigns the next id and stores the user. Fails with ErrUserExists on a duplicate email.
	CreateUser(ctx context.Context, user User) (User, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)
}

package database

import (
	"fmt"
	"log"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"mealbridge/app/models"
)

func nowISO() string {
	return time.Now().Format(time.RFC3339)
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

func checkPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// findIdentityByEmail scans the identities namespace. The collection is
// small and unindexed; filtering happens here, same as every other
// client-side filter in this codebase.
func findIdentityByEmail(store Store, email string) (string, *models.Identity, error) {
	raw, err := store.Children("identities")
	if err != nil {
		return "", nil, fmt.Errorf("list identities: %w", err)
	}
	identities, err := decodeChildren[models.Identity]("identities", raw)
	if err != nil {
		return "", nil, err
	}
	for uid, identity := range identities {
		if strings.EqualFold(identity.Email, email) {
			id := identity
			return uid, &id, nil
		}
	}
	return "", nil, nil
}

// SignIn authenticates and returns the uid with the merged profile. The
// lastLogin stamp is an independent follow-up write, not atomic with the
// session the caller issues.
func SignIn(store Store, email, password string) (string, *models.User, error) {
	uid, identity, err := findIdentityByEmail(store, email)
	if err != nil {
		return "", nil, err
	}
	if identity == nil || !checkPasswordHash(password, identity.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}

	raw, err := store.Get("users/" + uid)
	if err != nil {
		return "", nil, fmt.Errorf("load profile %s: %w", uid, err)
	}
	if raw == nil {
		return "", nil, ErrProfileNotFound
	}

	var user models.User
	if err := decodeInto("users/"+uid, raw, &user); err != nil {
		return "", nil, err
	}

	if err := store.Update("users/"+uid, map[string]any{"lastLogin": nowISO()}); err != nil {
		log.Printf("users.SignIn: failed to stamp lastLogin for %s: %v", uid, err)
	}

	user.Email = identity.Email
	return uid, &user, nil
}

// signUp creates an identity plus its profile record and returns both the
// uid and the profile.
func signUp(store Store, email, password, name string, role models.Role) (string, *models.User, error) {
	if existing, _, err := findIdentityByEmail(store, email); err != nil {
		return "", nil, err
	} else if existing != "" {
		return "", nil, ErrEmailTaken
	}

	hash, err := hashPassword(password)
	if err != nil {
		return "", nil, fmt.Errorf("hash password: %w", err)
	}

	uid := store.PushKey()
	now := nowISO()

	identity := models.Identity{Email: email, PasswordHash: hash, CreatedAt: now}
	if err := store.Set("identities/"+uid, identity); err != nil {
		log.Printf("users.signUp: identity write failed: %v (email=%s)", err, email)
		return "", nil, fmt.Errorf("create identity: %w", err)
	}

	user := models.User{
		Email:     email,
		Name:      name,
		Role:      role,
		CreatedAt: now,
		LastLogin: now,
	}
	if err := store.Set("users/"+uid, user); err != nil {
		log.Printf("users.signUp: profile write failed: %v (uid=%s)", err, uid)
		return "", nil, fmt.Errorf("create profile: %w", err)
	}

	return uid, &user, nil
}

// SignUpPrincipal registers a new principal; self-service sign-up is only
// open to principals.
func SignUpPrincipal(store Store, email, password, name string) (string, *models.User, error) {
	return signUp(store, email, password, name, models.RolePrincipal)
}

// SignUpAdmin creates the bootstrap admin. Used by cmd/seed_admin, never
// exposed over HTTP.
func SignUpAdmin(store Store, email, password, name string) (string, *models.User, error) {
	return signUp(store, email, password, name, models.RoleAdmin)
}

// GetUserData returns the profile record, or nil when it does not exist.
func GetUserData(store Store, uid string) (*models.User, error) {
	raw, err := store.Get("users/" + uid)
	if err != nil {
		return nil, fmt.Errorf("load profile %s: %w", uid, err)
	}
	if raw == nil {
		return nil, nil
	}
	var user models.User
	if err := decodeInto("users/"+uid, raw, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUserProfile merges the named fields into the profile. Last write
// wins; there is no concurrency token.
func UpdateUserProfile(store Store, uid string, fields map[string]any) error {
	if err := store.Update("users/"+uid, fields); err != nil {
		log.Printf("users.UpdateUserProfile failed: %v (uid=%s fields=%v)", err, uid, fields)
		return fmt.Errorf("update profile %s: %w", uid, err)
	}
	return nil
}

// GetAllUsers returns every profile keyed by uid.
func GetAllUsers(store Store) (map[string]models.User, error) {
	raw, err := store.Children("users")
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return decodeChildren[models.User]("users", raw)
}

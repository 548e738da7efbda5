// Package password exposes Argon2id password hashing as a service.
package password

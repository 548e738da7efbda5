// Package password hashes and verifies passwords with Argon2id.
//
// Hashes are encoded as PHC strings, e.g.
//
//	$argon2id$v=19$m=65536,t=1,p=4$<salt>$<hash>
//
// so the parameters travel with the hash and verification keeps working
// after defaults change.
package password

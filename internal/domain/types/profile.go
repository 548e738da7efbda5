package types

// Profile ties a name to the directory where its keys and encrypted
// files live. Serialised as TOML in the user's home directory.
type Profile struct {
	Name    ProfileName `toml:"name"`
	Storage string      `toml:"storage"`
}

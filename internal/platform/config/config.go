package config

import "os"

// Facade captures facade-level configuration: the default application
// context names and the public origin used for credential deep links.
type Facade struct {
	// VaultContextName is the default context for profile lookups when the
	// caller (or the credential) does not name one.
	VaultContextName string

	// RecipientContextName labels the context a message recipient reads
	// its inbox from.
	RecipientContextName string

	// PublicOrigin prefixes credential deep links. Empty yields a
	// relative link.
	PublicOrigin string
}

const (
	defaultVaultContextName     = "Verida: Vault"
	defaultRecipientContextName = "Verida: Vault"
)

// FromEnv builds a Facade config from environment variables so callers
// stay lean. Unset variables fall back to the vault defaults.
func FromEnv() Facade {
	vault := os.Getenv("VERIGO_VAULT_CONTEXT_NAME")
	if vault == "" {
		vault = defaultVaultContextName
	}
	recipient := os.Getenv("VERIGO_RECIPIENT_CONTEXT_NAME")
	if recipient == "" {
		recipient = defaultRecipientContextName
	}
	return Facade{
		VaultContextName:     vault,
		RecipientContextName: recipient,
		PublicOrigin:         os.Getenv("VERIGO_PUBLIC_ORIGIN"),
	}
}

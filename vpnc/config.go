// Package vpnc drives the external vpnc client.
// This file contains the Config type holding the connection parameters
// that are rendered into a vpnc configuration file.
package vpnc

import (
	"fmt"
	"strings"

	"github.com/vpncman/vpnc-manager/common"
)

// Config holds the six parameters vpnc needs to establish a tunnel.
// The values are passed to the external client verbatim; their protocol
// semantics are not interpreted here.
type Config struct {
	// Gateway is the address of the IPSec gateway.
	Gateway string
	// ID is the IPSec group identifier.
	ID string
	// Secret is the IPSec group secret.
	Secret string
	// Authmode is the IKE authentication mode, usually "psk".
	Authmode string
	// Username is the Xauth username.
	Username string
	// Password is the Xauth password.
	Password string
}

// Validate checks that every field is present and renderable.
// The configuration file format is line-oriented, so values containing
// newlines are rejected rather than escaped.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"gateway", c.Gateway},
		{"id", c.ID},
		{"secret", c.Secret},
		{"authmode", c.Authmode},
		{"username", c.Username},
		{"password", c.Password},
	}

	for _, f := range fields {
		if f.value == "" {
			return fmt.Errorf("%w: %s", common.ErrMissingField, f.name)
		}
		if strings.ContainsAny(f.value, "\r\n") {
			return fmt.Errorf("%w: %s must not contain line breaks", common.ErrInvalidProfile, f.name)
		}
	}
	return nil
}

// Render produces the vpnc configuration file contents: six lines in
// fixed order with verbatim value substitution.
func (c *Config) Render() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	content := fmt.Sprintf("IPSec gateway %s\n"+
		"IPSec ID %s\n"+
		"IPSec secret %s\n"+
		"IKE Authmode %s\n"+
		"Xauth username %s\n"+
		"Xauth password %s\n",
		c.Gateway, c.ID, c.Secret, c.Authmode, c.Username, c.Password)

	return []byte(content), nil
}

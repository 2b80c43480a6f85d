// Package permissions holds the route table of permissions.json: which roles may call
// which endpoint, and which endpoints are public.
package permissions

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"hotelpos/shared/constant"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

var knownRoles = []string{constant.RoleAdmin, constant.RoleReceptionist, constant.RoleCashier}

// Permission lists the roles allowed on one route. An empty list admits any
// authenticated user, Skip makes the route public.
type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
}

// Allows reports whether role may call the route.
func (p Permission) Allows(role string) bool {
	return p.Skip || len(p.Permissions) == 0 || slices.Contains(p.Permissions, role)
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`
}

func normalize(path string) string {
	if path == "/" {
		return path
	}

	return strings.TrimSuffix(path, "/")
}

// Lookup finds the entry of a chi route pattern, ignoring a trailing slash.
func (r *PermissionData) Lookup(pattern, method string) (Permission, bool) {
	pattern = normalize(pattern)

	for _, endpoint := range r.Endpoints {
		if endpoint.Method == method && normalize(endpoint.Path) == pattern {
			return endpoint, true
		}
	}

	return Permission{}, false
}

func (r *PermissionData) validate() error {
	for _, endpoint := range r.Endpoints {
		for _, role := range endpoint.Permissions {
			if !slices.Contains(knownRoles, role) {
				return fmt.Errorf("%s %s: unknown role %q", endpoint.Method, endpoint.Path, role)
			}
		}
	}

	return nil
}

// Get decodes the embedded table. A malformed table stops the process.
func Get() *PermissionData {
	var permissions PermissionData

	if err := json.Unmarshal(permissionsData, &permissions); err != nil {
		log.Fatal().Err(err).Msg("Failed to decode embedded permissions")
	}

	if err := permissions.validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid embedded permissions")
	}

	log.Info().Int("endpoints", len(permissions.Endpoints)).Msg("Loaded embedded permissions")

	return &permissions
}

package info

import "sort"

// DefaultAccessZone is the access zone used when the caller does not name one.
const DefaultAccessZone = "System"

// Scope values accepted for directory-provider listings.
const (
	ScopeEffective = "effective"
	ScopeUser      = "user"
	ScopeDefault   = "default"
)

// Params is the raw caller input for a gather invocation, before validation.
type Params struct {
	// GatherSubset names the categories to fetch. Required, non-empty.
	GatherSubset []string

	// AccessZone scopes zone-aware categories. Defaults to "System".
	AccessZone string

	// IncludeAllAccessZones requests zone-aware listings across every access
	// zone. Mutually exclusive with an explicit non-default AccessZone.
	IncludeAllAccessZones bool

	// Scope selects the LDAP provider scope: effective, user or default.
	// Defaults to effective.
	Scope string
}

// RequestContext is the validated, immutable snapshot of caller intent used
// read-only through dispatch.
type RequestContext struct {
	requested             map[Category]struct{}
	accessZone            string
	includeAllAccessZones bool
	scope                 string
}

// NewRequestContext validates raw parameters, applies defaults and returns
// the request context. A nil context and a *ValidationError are returned for
// empty subsets, unknown categories, invalid scopes, or the mutually
// exclusive zone/all-zones combination. No remote call happens here.
func NewRequestContext(params Params) (*RequestContext, error) {
	if len(params.GatherSubset) == 0 {
		return nil, newValidationError("gather subset must name at least one category")
	}

	zone := params.AccessZone
	if zone == "" {
		zone = DefaultAccessZone
	}
	if params.IncludeAllAccessZones && zone != DefaultAccessZone {
		return nil, newValidationError(
			"access zone %q and include_all_access_zones are mutually exclusive", zone)
	}

	scope := params.Scope
	if scope == "" {
		scope = ScopeEffective
	}
	switch scope {
	case ScopeEffective, ScopeUser, ScopeDefault:
	default:
		return nil, newValidationError(
			"scope %q is not one of effective, user, default", scope)
	}

	// Exact set membership against the closed enumeration. Substring or
	// containment matching would let sibling names shadow each other
	// (e.g. nfs_global_settings vs other nfs_ categories).
	requested := make(map[Category]struct{}, len(params.GatherSubset))
	for _, name := range params.GatherSubset {
		category := Category(name)
		if !category.Valid() {
			return nil, newValidationError("unknown gather subset category %q", name)
		}
		requested[category] = struct{}{}
	}

	return &RequestContext{
		requested:             requested,
		accessZone:            zone,
		includeAllAccessZones: params.IncludeAllAccessZones,
		scope:                 scope,
	}, nil
}

// Requested reports whether the caller asked for the given category.
func (rc *RequestContext) Requested(category Category) bool {
	_, ok := rc.requested[category]
	return ok
}

// RequestedCategories returns the requested categories in registry order.
func (rc *RequestContext) RequestedCategories() []Category {
	categories := make([]Category, 0, len(rc.requested))
	for category := range rc.requested {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool {
		return registryOrder[categories[i]] < registryOrder[categories[j]]
	})
	return categories
}

// AccessZone returns the resolved access zone.
func (rc *RequestContext) AccessZone() string {
	return rc.accessZone
}

// IncludeAllAccessZones reports whether zone-aware listings span all zones.
func (rc *RequestContext) IncludeAllAccessZones() bool {
	return rc.includeAllAccessZones
}

// Scope returns the resolved LDAP scope.
func (rc *RequestContext) Scope() string {
	return rc.scope
}

package kat

// NewValue returns a chain tagged as a literal payload token.
func NewValue() *Chain {
	return &Chain{role: RoleValue}
}

// NewAlias returns a chain tagged as a name token. Aliases auto-strip a
// single trailing colon terminator on read, matching the framer's
// convention for KAT attribute names.
func NewAlias() *Chain {
	return &Chain{role: RoleAlias}
}

// AliasName returns the alias's name with its trailing ':' terminator
// stripped, if the chain is tagged RoleAlias and ends with one. Chains of
// any other role are returned unchanged via String().
func AliasName(c *Chain) string {
	s := c.String()
	if c.role == RoleAlias && len(s) > 0 && s[len(s)-1] == ':' {
		return s[:len(s)-1]
	}
	return s
}

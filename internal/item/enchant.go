package item

import (
	"strconv"
	"strings"

	"shopkeeper/internal/diagnostic"
	"shopkeeper/internal/match"
)

// ParseEnchantments parses "name[:level],name[:level],...". Each entry is
// handled on its own: unknown names are dropped, bad levels become 1, and
// levels outside [MinEnchantLevel, MaxEnchantLevel] are clamped.
func (p *Parser) ParseEnchantments(text string, scope diagnostic.Scope) []Enchantment {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var out []Enchantment

	for i, part := range strings.Split(text, ",") {
		if e, ok := p.parseEnchantment(strings.TrimSpace(part), scope.Index(i)); ok {
			out = append(out, e)
		}
	}

	return out
}

func (p *Parser) parseEnchantment(entry string, scope diagnostic.Scope) (Enchantment, bool) {
	if entry == "" {
		scope.Warnf(CodeEmptyEnchantment, "empty enchantment entry")
		return Enchantment{}, false
	}

	name, rawLevel, hasLevel := strings.Cut(entry, ":")
	name = strings.TrimSpace(name)
	rawLevel = strings.TrimSpace(rawLevel)

	level := MinEnchantLevel

	if hasLevel && rawLevel != "" {
		n, err := strconv.Atoi(rawLevel)
		if err != nil {
			scope.Warnf(CodeInvalidLevel, "invalid level %q for enchantment %q, using %d", rawLevel, name, MinEnchantLevel)
		} else {
			level = clampLevel(n)
			if level != n {
				scope.Infof(CodeLevelClamped, "level %d for enchantment %q is outside [%d, %d], using %d",
					n, name, MinEnchantLevel, MaxEnchantLevel, level)
			}
		}
	}

	ench, ok := p.reg.Enchantment(match.NormalizeKey(name))
	if !ok {
		scope.Suggestf(CodeUnknownEnchantment, p.suggest(name, enchantmentKeys), "unknown enchantment %q", name)
		return Enchantment{}, false
	}

	return Enchantment{Name: ench.ID, Level: level}, true
}

func clampLevel(n int) int {
	return max(MinEnchantLevel, min(MaxEnchantLevel, n))
}

// Package prefixer rewrites a CSS syntax tree so modern constructs carry
// the legacy vendor-prefixed fallbacks the configured browser targets
// still need. The transformation is additive and idempotent: originals
// are preserved, re-running adds nothing new.
package prefixer

import (
	"github.com/chisel-web/chisel/compiler/compat"
	"github.com/chisel-web/chisel/compiler/cssast"
	"github.com/chisel-web/chisel/compiler/span"
)

// Prefix identifies a vendor.
type Prefix int

const (
	PrefixNone Prefix = iota
	PrefixWebkit
	PrefixMoz
	PrefixO
	PrefixMs
)

// String returns the prefix as it appears in source
func (p Prefix) String() string {
	switch p {
	case PrefixWebkit:
		return "-webkit-"
	case PrefixMoz:
		return "-moz-"
	case PrefixO:
		return "-o-"
	case PrefixMs:
		return "-ms-"
	default:
		return ""
	}
}

// Options configures a prefixer run. Env is the resolved browser target
// set; an empty Env prefixes everything.
type Options struct {
	Env compat.Versions
}

type prefixedRule struct {
	prefix Prefix
	rule   cssast.Rule
}

type prefixedAtRule struct {
	prefix Prefix
	rule   *cssast.AtRule
}

type prefixedQualifiedRule struct {
	prefix Prefix
	rule   *cssast.QualifiedRule
}

// Prefixer is the tree transformer. A Prefixer is single-use per Process
// call; its staging state drains completely before Process returns.
type Prefixer struct {
	env compat.Versions

	inKeyframeBlock   bool
	supportsCondition *cssast.SupportsCondition
	simpleBlock       *cssast.SimpleBlock
	rulePrefix        Prefix
	// topRules tracks the rules already emitted at the top level, so
	// re-running the transformer does not stage a second copy of a rule
	// whose block has since gained prefixed members.
	topRules *[]cssast.Rule

	addedTopRules       []prefixedRule
	addedAtRules        []prefixedAtRule
	addedQualifiedRules []prefixedQualifiedRule
	addedDeclarations   []*cssast.Declaration
}

// New creates a Prefixer for the given options.
func New(opts Options) *Prefixer {
	return &Prefixer{env: opts.Env}
}

// Process mutates the stylesheet in place.
func (p *Prefixer) Process(sheet *cssast.Stylesheet) {
	p.visitStylesheet(sheet)
}

func (p *Prefixer) shouldPrefix(feature string, def bool) bool {
	return compat.ShouldPrefix(feature, p.env, def)
}

// activeFor reports whether expansions for the given vendor may run: all
// of them inside an unprefixed rule, only the matching vendor inside an
// already-prefixed one.
func (p *Prefixer) activeFor(prefix Prefix) bool {
	return p.rulePrefix == prefix || p.rulePrefix == PrefixNone
}

// visitStylesheet drives the top-level rule list. Rules staged while a
// rule's subtree was visited are inserted before that rule, de-duplicated
// against everything already present.
func (p *Prefixer) visitStylesheet(sheet *cssast.Stylesheet) {
	newRules := make([]cssast.Rule, 0, len(sheet.Rules))
	p.topRules = &newRules

	for _, rule := range sheet.Rules {
		p.visitRule(rule)

		for _, added := range p.addedTopRules {
			skip := false
			for _, existing := range newRules {
				if cssast.EqualRules(added.rule, existing) {
					skip = true
					break
				}
			}
			if skip {
				continue
			}

			oldRulePrefix := p.rulePrefix
			p.rulePrefix = added.prefix
			p.visitRuleChildren(added.rule)
			newRules = append(newRules, added.rule)
			p.rulePrefix = oldRulePrefix
		}
		p.addedTopRules = p.addedTopRules[:0]

		newRules = append(newRules, rule)
	}

	sheet.Rules = newRules
	p.topRules = nil
}

// hasSiblingAtRule reports whether the current scope already carries an
// at-rule with the given name and an equal prelude.
func (p *Prefixer) hasSiblingAtRule(name string, prelude cssast.AtRulePrelude) bool {
	match := func(r *cssast.AtRule) bool {
		return lowerEq(r.Name, name) && cssast.EqualAtRulePreludes(r.Prelude, prelude)
	}

	if p.simpleBlock != nil {
		for _, v := range p.simpleBlock.Values {
			if r, ok := v.(*cssast.AtRule); ok && match(r) {
				return true
			}
		}
		return false
	}

	if p.topRules != nil {
		for _, existing := range *p.topRules {
			if r, ok := existing.(*cssast.AtRule); ok && match(r) {
				return true
			}
		}
	}
	return false
}

// hasSiblingQualifiedRule reports whether the current scope already
// carries a qualified rule with an equal prelude.
func (p *Prefixer) hasSiblingQualifiedRule(prelude []cssast.ComponentValue) bool {
	if p.simpleBlock != nil {
		for _, v := range p.simpleBlock.Values {
			if r, ok := v.(*cssast.QualifiedRule); ok && cssast.EqualComponentValues(r.Prelude, prelude) {
				return true
			}
		}
		return false
	}

	if p.topRules != nil {
		for _, existing := range *p.topRules {
			if r, ok := existing.(*cssast.QualifiedRule); ok && cssast.EqualComponentValues(r.Prelude, prelude) {
				return true
			}
		}
	}
	return false
}

func (p *Prefixer) visitRule(rule cssast.Rule) {
	switch n := rule.(type) {
	case *cssast.AtRule:
		p.visitAtRule(n)
	case *cssast.QualifiedRule:
		p.visitQualifiedRule(n)
	}
}

// visitRuleChildren visits a staged rule's subtree without re-running the
// rule-level expansions on it.
func (p *Prefixer) visitRuleChildren(rule cssast.Rule) {
	switch n := rule.(type) {
	case *cssast.AtRule:
		p.visitAtRulePrelude(n.Prelude)
		if n.Block != nil {
			p.visitSimpleBlock(n.Block)
		}
	case *cssast.QualifiedRule:
		if n.Block != nil {
			p.visitSimpleBlock(n.Block)
		}
	}
}

// addAtRule stages a synthesized at-rule next to the rule it derives
// from: at the top level when no block is open, inside the current block
// otherwise.
func (p *Prefixer) addAtRule(prefix Prefix, rule *cssast.AtRule) {
	if p.simpleBlock == nil {
		p.addedTopRules = append(p.addedTopRules, prefixedRule{prefix: prefix, rule: rule})
	} else {
		p.addedAtRules = append(p.addedAtRules, prefixedAtRule{prefix: prefix, rule: rule})
	}
}

func (p *Prefixer) visitAtRule(rule *cssast.AtRule) {
	originalBlock := cssast.CloneSimpleBlock(rule.Block)

	p.visitAtRulePrelude(rule.Prelude)
	if rule.Block != nil {
		p.visitSimpleBlock(rule.Block)
	}

	switch {
	case lowerEq(rule.Name, "viewport"):
		if p.shouldPrefix("@-ms-viewport", false) && !p.hasSiblingAtRule("-ms-viewport", rule.Prelude) {
			p.addAtRule(PrefixMs, &cssast.AtRule{
				Span:    rule.Span,
				Name:    "-ms-viewport",
				Prelude: cssast.CloneAtRulePrelude(rule.Prelude),
				Block:   cssast.CloneSimpleBlock(originalBlock),
			})
		}
		if p.shouldPrefix("@-o-viewport", false) && !p.hasSiblingAtRule("-o-viewport", rule.Prelude) {
			p.addAtRule(PrefixO, &cssast.AtRule{
				Span:    rule.Span,
				Name:    "-o-viewport",
				Prelude: cssast.CloneAtRulePrelude(rule.Prelude),
				Block:   originalBlock,
			})
		}
	case lowerEq(rule.Name, "keyframes"):
		if p.shouldPrefix("@-webkit-keyframes", false) && !p.hasSiblingAtRule("-webkit-keyframes", rule.Prelude) {
			p.addAtRule(PrefixWebkit, &cssast.AtRule{
				Span:    rule.Span,
				Name:    "-webkit-keyframes",
				Prelude: cssast.CloneAtRulePrelude(rule.Prelude),
				Block:   cssast.CloneSimpleBlock(originalBlock),
			})
		}
		if p.shouldPrefix("@-moz-keyframes", false) && !p.hasSiblingAtRule("-moz-keyframes", rule.Prelude) {
			p.addAtRule(PrefixMoz, &cssast.AtRule{
				Span:    rule.Span,
				Name:    "-moz-keyframes",
				Prelude: cssast.CloneAtRulePrelude(rule.Prelude),
				Block:   cssast.CloneSimpleBlock(originalBlock),
			})
		}
		if p.shouldPrefix("@-o-keyframes", false) && !p.hasSiblingAtRule("-o-keyframes", rule.Prelude) {
			p.addAtRule(PrefixO, &cssast.AtRule{
				Span:    span.Dummy,
				Name:    "-o-keyframes",
				Prelude: cssast.CloneAtRulePrelude(rule.Prelude),
				Block:   originalBlock,
			})
		}
	}
}

func (p *Prefixer) visitAtRulePrelude(prelude cssast.AtRulePrelude) {
	switch n := prelude.(type) {
	case *cssast.MediaQueryList:
		p.visitMediaQueryList(n)
	case *cssast.ImportPrelude:
		p.visitImportPrelude(n)
	case *cssast.SupportsCondition:
		p.visitSupportsCondition(n)
	}
}

// visitImportPrelude widens `supports(<declaration>)` into a disjunction
// when the declaration gained prefixed variants.
func (p *Prefixer) visitImportPrelude(prelude *cssast.ImportPrelude) {
	if prelude.Supports == nil {
		return
	}

	if prelude.Supports.Declaration != nil {
		p.visitDeclaration(prelude.Supports.Declaration)

		if len(p.addedDeclarations) > 0 {
			decl := prelude.Supports.Declaration
			terms := make([]cssast.SupportsTerm, 0, 1+len(p.addedDeclarations))
			terms = append(terms, cssast.SupportsTerm{
				Span:     decl.Span,
				InParens: &cssast.SupportsInParens{Span: decl.Span, Feature: decl},
			})

			for _, added := range p.addedDeclarations {
				terms = append(terms, cssast.SupportsTerm{
					Span:     span.Dummy,
					Keyword:  "or",
					InParens: &cssast.SupportsInParens{Span: span.Dummy, Feature: added},
				})
			}
			p.addedDeclarations = p.addedDeclarations[:0]

			prelude.Supports.Declaration = nil
			prelude.Supports.Condition = &cssast.SupportsCondition{
				Span:  decl.Span,
				Terms: terms,
			}
		}
		return
	}

	if prelude.Supports.Condition != nil {
		p.visitSupportsCondition(prelude.Supports.Condition)
	}
}

func (p *Prefixer) visitSupportsCondition(cond *cssast.SupportsCondition) {
	oldCondition := p.supportsCondition
	p.supportsCondition = cssast.CloneSupportsCondition(cond)

	for i := range cond.Terms {
		if cond.Terms[i].InParens != nil {
			p.visitSupportsInParens(cond.Terms[i].InParens)
		}
	}

	p.supportsCondition = oldCondition
}

// visitSupportsInParens expands a feature query into a disjunction of the
// original and every staged prefixed variant, skipping variants the
// enclosing condition already tests for.
func (p *Prefixer) visitSupportsInParens(parens *cssast.SupportsInParens) {
	if parens.Condition != nil {
		p.visitSupportsCondition(parens.Condition)
		return
	}

	if parens.Feature == nil {
		return
	}

	p.visitDeclaration(parens.Feature)

	if len(p.addedDeclarations) == 0 || p.supportsCondition == nil {
		p.addedDeclarations = p.addedDeclarations[:0]
		return
	}

	terms := make([]cssast.SupportsTerm, 0, 1+len(p.addedDeclarations))
	terms = append(terms, cssast.SupportsTerm{
		Span:     parens.Span,
		InParens: &cssast.SupportsInParens{Span: parens.Span, Feature: parens.Feature},
	})

	for _, added := range p.addedDeclarations {
		term := cssast.SupportsTerm{
			Span:     span.Dummy,
			Keyword:  "or",
			InParens: &cssast.SupportsInParens{Span: span.Dummy, Feature: added},
		}

		skip := false
		for _, existing := range p.supportsCondition.Terms {
			if existing.Keyword == term.Keyword && cssast.EqualSupportsInParens(existing.InParens, term.InParens) {
				skip = true
				break
			}
		}
		if skip {
			continue
		}

		terms = append(terms, term)
	}
	p.addedDeclarations = p.addedDeclarations[:0]

	if len(terms) > 1 {
		*parens = cssast.SupportsInParens{
			Span:      span.Dummy,
			Condition: &cssast.SupportsCondition{Span: span.Dummy, Terms: terms},
		}
	}
}

// visitMediaQueryList appends legacy device-pixel-ratio variants of
// resolution queries after the originals.
func (p *Prefixer) visitMediaQueryList(list *cssast.MediaQueryList) {
	var newQueries []*cssast.MediaQuery

	for _, q := range list.Queries {
		if p.shouldPrefix("-webkit-min-device-pixel-ratio", false) {
			candidate := cssast.CloneMediaQuery(q)
			replaceMediaResolution(candidate, "min-resolution", "-webkit-min-device-pixel-ratio")
			replaceMediaResolution(candidate, "max-resolution", "-webkit-max-device-pixel-ratio")

			if !containsMediaQuery(list.Queries, candidate) {
				newQueries = append(newQueries, candidate)
			}
		}

		if p.shouldPrefix("min--moz-device-pixel-ratio", false) {
			candidate := cssast.CloneMediaQuery(q)
			replaceMediaResolution(candidate, "min-resolution", "min--moz-device-pixel-ratio")
			replaceMediaResolution(candidate, "max-resolution", "max--moz-device-pixel-ratio")

			if !containsMediaQuery(list.Queries, candidate) {
				newQueries = append(newQueries, candidate)
			}
		}

		if p.shouldPrefix("-o-min-device-pixel-ratio", false) {
			candidate := cssast.CloneMediaQuery(q)
			replaceMediaResolution(candidate, "min-resolution", "-o-min-device-pixel-ratio")
			replaceMediaResolution(candidate, "max-resolution", "-o-max-device-pixel-ratio")

			if !containsMediaQuery(list.Queries, candidate) {
				newQueries = append(newQueries, candidate)
			}
		}
	}

	list.Queries = append(list.Queries, newQueries...)
}

func containsMediaQuery(queries []*cssast.MediaQuery, candidate *cssast.MediaQuery) bool {
	for _, q := range queries {
		if cssast.EqualMediaQueries(q, candidate) {
			return true
		}
	}
	return false
}

// visitQualifiedRule stages prefixed clones of rules whose selectors use
// pseudo-classes or pseudo-elements that only exist under a vendor name.
func (p *Prefixer) visitQualifiedRule(rule *cssast.QualifiedRule) {
	originalBlock := cssast.CloneSimpleBlock(rule.Block)

	if rule.Block != nil {
		p.visitSimpleBlock(rule.Block)
	}

	if p.activeFor(PrefixWebkit) {
		webkitPrelude := cssast.CloneComponentValues(rule.Prelude)

		if p.shouldPrefix(":-webkit-autofill", false) {
			replacePseudoClass(webkitPrelude, "autofill", "-webkit-autofill")
		}
		if p.shouldPrefix(":-webkit-any-link", false) {
			replacePseudoClass(webkitPrelude, "any-link", "-webkit-any-link")
		}
		if p.shouldPrefix(":-webkit-full-screen", false) {
			replacePseudoClass(webkitPrelude, "fullscreen", "-webkit-full-screen")
		}
		if p.shouldPrefix("::-webkit-file-upload-button", false) {
			replacePseudoElement(webkitPrelude, "file-selector-button", "-webkit-file-upload-button")
		}
		if p.shouldPrefix("::-webkit-backdrop", false) {
			replacePseudoElement(webkitPrelude, "backdrop", "-webkit-backdrop")
		}
		if p.shouldPrefix("::-webkit-input-placeholder", false) {
			replacePseudoElement(webkitPrelude, "placeholder", "-webkit-input-placeholder")
		}

		p.stageSelectorVariant(PrefixWebkit, rule, webkitPrelude, originalBlock)
	}

	if p.activeFor(PrefixMoz) {
		mozPrelude := cssast.CloneComponentValues(rule.Prelude)

		if p.shouldPrefix(":-moz-read-only", false) {
			replacePseudoClass(mozPrelude, "read-only", "-moz-read-only")
		}
		if p.shouldPrefix(":-moz-read-write", false) {
			replacePseudoClass(mozPrelude, "read-write", "-moz-read-write")
		}
		if p.shouldPrefix(":-moz-any-link", false) {
			replacePseudoClass(mozPrelude, "any-link", "-moz-any-link")
		}
		if p.shouldPrefix(":-moz-full-screen", false) {
			replacePseudoClass(mozPrelude, "fullscreen", "-moz-full-screen")
		}
		if p.shouldPrefix("::-moz-selection", false) {
			replacePseudoElement(mozPrelude, "selection", "-moz-selection")
		}

		if p.shouldPrefix(":-moz-placeholder", false) {
			legacyPrelude := cssast.CloneComponentValues(mozPrelude)
			replacePseudoClassOnPseudoElement(legacyPrelude, "placeholder", "-moz-placeholder")

			if !cssast.EqualComponentValues(legacyPrelude, mozPrelude) {
				p.stageSelectorVariant(PrefixMoz, rule, legacyPrelude, originalBlock)
			}
		}
		if p.shouldPrefix("::-moz-placeholder", false) {
			replacePseudoElement(mozPrelude, "placeholder", "-moz-placeholder")
		}

		p.stageSelectorVariant(PrefixMoz, rule, mozPrelude, originalBlock)
	}

	if p.activeFor(PrefixMs) {
		msPrelude := cssast.CloneComponentValues(rule.Prelude)

		if p.shouldPrefix(":-ms-fullscreen", false) {
			replacePseudoClass(msPrelude, "fullscreen", "-ms-fullscreen")
		}
		if p.shouldPrefix(":-ms-input-placeholder", false) {
			replacePseudoClass(msPrelude, "placeholder-shown", "-ms-input-placeholder")
		}
		if p.shouldPrefix("::-ms-browse", false) {
			replacePseudoElement(msPrelude, "file-selector-button", "-ms-browse")
		}
		if p.shouldPrefix("::-ms-backdrop", false) {
			replacePseudoElement(msPrelude, "backdrop", "-ms-backdrop")
		}

		if p.shouldPrefix(":-ms-input-placeholder", false) {
			legacyPrelude := cssast.CloneComponentValues(msPrelude)
			replacePseudoClassOnPseudoElement(legacyPrelude, "placeholder", "-ms-input-placeholder")

			if !cssast.EqualComponentValues(legacyPrelude, msPrelude) {
				p.stageSelectorVariant(PrefixMs, rule, legacyPrelude, originalBlock)
			}
		}
		if p.shouldPrefix("::-ms-input-placeholder", false) {
			replacePseudoElement(msPrelude, "placeholder", "-ms-input-placeholder")
		}

		p.stageSelectorVariant(PrefixMs, rule, msPrelude, originalBlock)
	}
}

// stageSelectorVariant stages a qualified rule clone when the rewritten
// prelude differs from the original.
func (p *Prefixer) stageSelectorVariant(prefix Prefix, rule *cssast.QualifiedRule, prelude []cssast.ComponentValue, block *cssast.SimpleBlock) {
	if cssast.EqualComponentValues(rule.Prelude, prelude) {
		return
	}
	if p.hasSiblingQualifiedRule(prelude) {
		return
	}

	variant := &cssast.QualifiedRule{
		Span:    span.Dummy,
		Prelude: prelude,
		Block:   cssast.CloneSimpleBlock(block),
	}

	if p.simpleBlock == nil {
		p.addedTopRules = append(p.addedTopRules, prefixedRule{prefix: prefix, rule: variant})
	} else {
		p.addedQualifiedRules = append(p.addedQualifiedRules, prefixedQualifiedRule{prefix: prefix, rule: variant})
	}
}

func (p *Prefixer) visitKeyframeBlock(block *cssast.KeyframeBlock) {
	oldInKeyframeBlock := p.inKeyframeBlock
	p.inKeyframeBlock = true

	if block.Block != nil {
		p.visitSimpleBlock(block.Block)
	}

	p.inKeyframeBlock = oldInKeyframeBlock
}

// visitSimpleBlock is the insertion scheduler: staged declarations and
// rules are inserted immediately before the block member they derive
// from. Staged rules are re-visited with their vendor pinned so nested
// expansion stays within one prefix.
func (p *Prefixer) visitSimpleBlock(block *cssast.SimpleBlock) {
	oldSimpleBlock := p.simpleBlock
	p.simpleBlock = cloneBlockShallow(block)

	newValues := make([]cssast.ComponentValue, 0, len(block.Values))

	for _, value := range block.Values {
		switch n := value.(type) {
		case *cssast.Declaration:
			p.visitDeclaration(n)
		case *cssast.QualifiedRule:
			p.visitQualifiedRule(n)
		case *cssast.AtRule:
			p.visitAtRule(n)
		case *cssast.KeyframeBlock:
			p.visitKeyframeBlock(n)
		case *cssast.SimpleBlock:
			p.visitSimpleBlock(n)
		}

		switch value.(type) {
		case *cssast.Declaration:
			for _, added := range p.addedDeclarations {
				if !p.isDuplicateSibling(newValues, added) {
					newValues = append(newValues, added)
				}
			}
			p.addedDeclarations = p.addedDeclarations[:0]

			newValues = p.drainStagedAtRules(newValues)
		case *cssast.QualifiedRule, *cssast.AtRule, *cssast.KeyframeBlock:
			newValues = p.drainStagedQualifiedRules(newValues)
			newValues = p.drainStagedAtRules(newValues)
		}

		newValues = append(newValues, value)
	}

	block.Values = newValues
	p.simpleBlock = oldSimpleBlock
}

func (p *Prefixer) drainStagedQualifiedRules(out []cssast.ComponentValue) []cssast.ComponentValue {
	for _, staged := range p.addedQualifiedRules {
		oldRulePrefix := p.rulePrefix
		p.rulePrefix = staged.prefix
		if staged.rule.Block != nil {
			p.visitSimpleBlock(staged.rule.Block)
		}
		p.rulePrefix = oldRulePrefix

		if !p.isDuplicateSibling(out, staged.rule) {
			out = append(out, staged.rule)
		}
	}
	p.addedQualifiedRules = p.addedQualifiedRules[:0]
	return out
}

func (p *Prefixer) drainStagedAtRules(out []cssast.ComponentValue) []cssast.ComponentValue {
	for _, staged := range p.addedAtRules {
		oldRulePrefix := p.rulePrefix
		p.rulePrefix = staged.prefix
		p.visitRuleChildren(staged.rule)
		p.rulePrefix = oldRulePrefix

		if !p.isDuplicateSibling(out, staged.rule) {
			out = append(out, staged.rule)
		}
	}
	p.addedAtRules = p.addedAtRules[:0]
	return out
}

// isDuplicateSibling reports whether candidate already exists among the
// values inserted so far or the block's original members.
func (p *Prefixer) isDuplicateSibling(inserted []cssast.ComponentValue, candidate cssast.ComponentValue) bool {
	for _, v := range inserted {
		if cssast.EqualIgnoringSpan(v, candidate) {
			return true
		}
	}
	if p.simpleBlock != nil {
		for _, v := range p.simpleBlock.Values {
			if cssast.EqualIgnoringSpan(v, candidate) {
				return true
			}
		}
	}
	return false
}

// cloneBlockShallow snapshots a block's member list for sibling lookups
// without copying the members themselves.
func cloneBlockShallow(block *cssast.SimpleBlock) *cssast.SimpleBlock {
	values := make([]cssast.ComponentValue, len(block.Values))
	copy(values, block.Values)
	return &cssast.SimpleBlock{Span: block.Span, Name: block.Name, Values: values}
}

// siblingProperties collects the declared property names of the current
// block, used to avoid staging a prefixed property the author already
// wrote.
func (p *Prefixer) siblingProperties() map[string]bool {
	props := make(map[string]bool)
	if p.simpleBlock == nil {
		return props
	}
	for _, v := range p.simpleBlock.Values {
		if decl, ok := v.(*cssast.Declaration); ok {
			props[decl.Name] = true
		}
	}
	return props
}

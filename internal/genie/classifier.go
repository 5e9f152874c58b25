package genie

import (
	"fmt"
	"strings"

	"github.com/hvacinsights/genie-dashboard/internal/knowledge"
)

// Rule identifies which response template answered a query.
type Rule string

const (
	RuleCallReasons     Rule = "call_reasons"
	RuleBrands          Rule = "brands"
	RuleFrequentCallers Rule = "frequent_callers"
	RuleFallback        Rule = "fallback"
)

// repeatCallerThreshold is the call count a caller must exceed to be listed.
const repeatCallerThreshold = 2

const (
	callReasonsHeader = "Here are the most frequent reasons for calls this week:\n\n"
	callersHeader     = "Here are the customers who have called more than 2 times:\n\n"
	brandTemplate     = "Based on our call data, %s solutions are the most discussed brand, with customers specifically inquiring about %s systems and rebates."
	noBrandReply      = "Based on our call data, no single brand stands out in customer calls yet."
	fallbackTail      = ". Based on our current data, I can help you with:\n\n" +
		"• Call volume and reasons\n" +
		"• Service inquiries\n" +
		"• Customer follow-ups\n" +
		"• HVAC system trends"
)

type rule struct {
	name  Rule
	terms []string
}

// Checked in order; the first rule whose terms all appear wins.
var rules = []rule{
	{RuleCallReasons, []string{"frequent", "reasons"}},
	{RuleBrands, []string{"brands"}},
	{RuleFrequentCallers, []string{"called", "times"}},
}

// Classifier maps free text to a canned reply built from the knowledge base.
// It holds no state beyond its read-only dataset.
type Classifier struct {
	KB *knowledge.KnowledgeBase
}

func NewClassifier(kb *knowledge.KnowledgeBase) Classifier {
	return Classifier{KB: kb}
}

// Match returns the rule a query falls under.
func (c Classifier) Match(query string) Rule {
	q := strings.ToLower(query)
	for _, r := range rules {
		if containsAll(q, r.terms) {
			return r.name
		}
	}
	return RuleFallback
}

// Classify always returns a reply. Blank queries are the caller's concern.
func (c Classifier) Classify(query string) string {
	switch c.Match(query) {
	case RuleCallReasons:
		return c.callReasons()
	case RuleBrands:
		return c.brands()
	case RuleFrequentCallers:
		return c.frequentCallers()
	default:
		return "I understand you're asking about " + query + fallbackTail
	}
}

func (c Classifier) callReasons() string {
	reasons := c.KB.CallReasons()
	lines := make([]string, 0, len(reasons))
	for _, r := range reasons {
		lines = append(lines, fmt.Sprintf("• %s (%s of calls)", r.Topic, r.PercentageLabel))
	}
	return callReasonsHeader + strings.Join(lines, "\n")
}

func (c Classifier) brands() string {
	top, ok := c.KB.TopBrand()
	if !ok {
		return noBrandReply
	}
	return fmt.Sprintf(brandTemplate, top.Name, top.Name)
}

func (c Classifier) frequentCallers() string {
	callers := c.KB.CallersAbove(repeatCallerThreshold)
	lines := make([]string, 0, len(callers))
	for _, cl := range callers {
		lines = append(lines, fmt.Sprintf("• %s - %d calls (Reason: %s)", cl.Name, cl.Calls, cl.Reason))
	}
	return callersHeader + strings.Join(lines, "\n")
}

func containsAll(s string, terms []string) bool {
	for _, t := range terms {
		if !strings.Contains(s, t) {
			return false
		}
	}
	return true
}

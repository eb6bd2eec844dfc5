package scoring

// TierResult is the static results content shown for a tier. Selected
// purely by tier value, never computed.
type TierResult struct {
	Emoji          string   `json:"emoji"`
	Interpretation string   `json:"interpretation"`
	Working        []string `json:"working"`
	Risky          []string `json:"risky"`
	CTAText        string   `json:"cta_text"`
	CTAHref        string   `json:"cta_href"`
}

var tierResults = map[Tier]TierResult{
	TierDefensibleBet: {
		Emoji:          "🟢",
		Interpretation: "You have real evidence behind this bet. The risk now is execution speed, not direction.",
		Working: []string{
			"Problem and customer are specific and agreed on",
			"Key assumptions have been tested, not just listed",
			"Decisions are tied to measurable outcomes",
		},
		Risky: []string{
			"Momentum can erode alignment as scope grows",
			"Evidence goes stale; keep the discovery loop running",
		},
		CTAText: "Want to accelerate execution? Discuss ongoing support.",
		CTAHref: "/#advisory",
	},
	TierPartialClarity: {
		Emoji:          "🟡",
		Interpretation: "Parts of this bet are grounded, but at least one critical assumption is still untested.",
		Working: []string{
			"The team can articulate the problem",
			"Some user contact or testing exists",
		},
		Risky: []string{
			"The riskiest assumption has not been isolated or tested",
			"Go / no-go criteria are fuzzy, so commitment creeps",
		},
		CTAText: "Get a Bet Readiness Review before you commit engineering.",
		CTAHref: "/#contact?intent=bet-readiness",
	},
	TierGuessing: {
		Emoji:          "🔴",
		Interpretation: "This roadmap slice rests on opinion. Building now means paying engineering rates to discover the problem.",
		Working: []string{
			"You took this check honestly, which most teams skip",
		},
		Risky: []string{
			"No recent contact with real target users",
			"Prioritization is driven by stakeholder opinion",
			"A pivot would be political, not evidential",
		},
		CTAText: "Stop guessing. Book a Kill-or-Ship Decision Review.",
		CTAHref: "/#contact?intent=kill-or-ship",
	},
}

// ResultFor returns the static content block for a tier.
func ResultFor(t Tier) TierResult {
	if r, ok := tierResults[t]; ok {
		return r
	}
	return tierResults[TierGuessing]
}

package config

// Default phrase lists. Each function returns a fresh slice so that a
// caller mutating its Config cannot corrupt the defaults for later calls.
// All entries are lower-cased; the checks lower-case the sentence before
// matching.

// defaultSpamPhrases are promotional phrases typical of spam filters'
// trigger lists.
func defaultSpamPhrases() []string {
	return []string{
		"buy now",
		"act now",
		"limited time",
		"click here",
		"don't miss",
		"exclusive deal",
		"order now",
		"last chance",
		"100% free",
		"risk-free",
		"money back",
		"no obligation",
		"special offer",
		"once in a lifetime",
	}
}

// defaultHeavyJargon are corporate buzzwords that a single use of is
// already a readability problem.
func defaultHeavyJargon() []string {
	return []string{
		"synergy",
		"synergies",
		"paradigm",
		"ideate",
		"operationalize",
		"incentivize",
		"leverage our",
		"best-of-breed",
		"value-add",
		"core competency",
		"thought leadership",
		"circle back",
		"move the needle",
	}
}

// defaultMildJargon are overused business words that only become a
// problem when they pile up.
func defaultMildJargon() []string {
	return []string{
		"utilize",
		"facilitate",
		"optimize",
		"streamline",
		"robust",
		"scalable",
		"holistic",
		"strategic",
		"innovative",
		"cutting-edge",
		"seamless",
		"empower",
		"disruptive",
	}
}

// defaultFluffPhrases are filler phrases that add words without meaning.
func defaultFluffPhrases() []string {
	return []string{
		"in today's world",
		"at the end of the day",
		"needless to say",
		"it goes without saying",
		"when it comes to",
		"the fact that",
		"in order to",
		"last but not least",
		"without further ado",
		"as we all know",
		"first and foremost",
	}
}

// defaultIntensifiers are empty amplifiers that combine with a fluff
// phrase into a finding.
func defaultIntensifiers() []string {
	return []string{
		"very",
		"really",
		"extremely",
		"incredibly",
		"absolutely",
		"totally",
		"truly",
		"literally",
		"super",
	}
}

// defaultCTAPhrases are common newsletter calls to action.
func defaultCTAPhrases() []string {
	return []string{
		"sign up",
		"subscribe",
		"click here",
		"join now",
		"register today",
		"learn more",
		"get started",
		"download now",
		"book a call",
		"reply to this email",
		"forward this to",
	}
}

// defaultHedgeWords weaken a statement. "maybe" is deliberately absent:
// it is colloquial enough that flagging it generates more noise than
// signal in newsletter prose.
func defaultHedgeWords() []string {
	return []string{
		"might",
		"may",
		"could",
		"seems",
		"appears",
		"likely",
		"potentially",
	}
}

// defaultVagueDates are time references that tell the reader nothing.
func defaultVagueDates() []string {
	return []string{
		"soon",
		"recently",
		"in the near future",
		"at some point",
		"eventually",
		"shortly",
		"in the coming weeks",
		"sometime",
		"one day",
		"down the road",
	}
}

// defaultClaimVerbs are the strong-claim verbs of the
// claim_without_evidence check, in all inflections the regex-free
// substring match needs.
func defaultClaimVerbs() []string {
	return []string{
		"guarantee",
		"guarantees",
		"guaranteed",
		"prove",
		"proves",
		"proven",
		"ensure",
		"ensures",
		"unlock",
		"unlocks",
		"double",
		"doubles",
		"doubled",
		"triple",
		"triples",
		"tripled",
	}
}

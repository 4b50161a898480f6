package phrase

// Default returns the compiled-in phrase table: twelve equivalence classes
// covering the patient-assistant intents the generator was curated for.
//
// The data is carried over verbatim from the curated resource, including the
// repeated first entry of the "signs" class and the mixed-case timing
// entries; cleaning those up would change observed substitution behaviour.
func Default() *Table {
	return &Table{classes: []EquivalenceClass{
		{
			Name: "need",
			Phrases: []string{
				"do i need",
				"do i need to",
				"must i",
				"must i have",
				"is it required that i",
				"will i need",
				"will i need to",
			},
		},
		{
			Name: "signs",
			Phrases: []string{
				"what are the signs i need",
				"what are the signs i need",
				"how do i know i need",
				"when will i need to",
				"how can i know i need to",
				"what are the signs you should",
				"when should i have",
				"how do i know i should have",
			},
		},
		{
			Name: "timing",
			Phrases: []string{
				"when will I get",
				"when can I expect",
				"when are",
				"by when should I have",
			},
		},
		{
			Name: "billing",
			Phrases: []string{
				"what is my bill",
				"how much do i owe",
				"how much will i pay for",
			},
		},
		{
			Name: "frequency",
			Phrases: []string{
				"how often do i need",
				"what is the timeframe for",
			},
		},
		{
			Name: "scheduling",
			Phrases: []string{
				"when is my",
				"on what date",
				"when do i see",
			},
		},
		{
			Name: "insurance",
			Phrases: []string{
				"is this covered",
				"will my insurance cover",
				"will insurance cover",
				"do i need to pay",
			},
		},
		{
			Name: "location",
			Phrases: []string{
				"where is",
				"where can i find",
				"how can i find",
				"i cant find",
				"what is the location",
				"can i have the location",
			},
		},
		{
			Name: "ability",
			Phrases: []string{
				"what can i",
				"is there anything i can",
				"can i",
			},
		},
		{
			Name: "preparation",
			Phrases: []string{
				"what do i need",
				"how do i prepare",
				"how can i get ready for",
				"what should i bring",
			},
		},
		{
			Name: "forgetfulness",
			Phrases: []string{
				"what if i forgot",
				"i forgot to",
				"is it ok if i forgot",
			},
		},
		{
			Name: "explanation",
			Phrases: []string{
				"what is",
				"tell me what is",
				"describe",
				"i want to understand",
			},
		},
	}}
}

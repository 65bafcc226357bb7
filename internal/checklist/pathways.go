package checklist

import (
	"fmt"
	"strings"
)

// Pathway IDs.
const (
	PathwayAcute   = "acute"
	PathwayChronic = "chronic"
)

// Option IDs shared by both pathways.
var (
	redFlagOptions = []Option{
		{ID: "redflag-suicidality", Label: "Acute suicidality / severe depressive symptoms"},
		{ID: "redflag-psychosis", Label: "Suspected psychosis or mania"},
		{ID: "redflag-substance", Label: "Severe substance use (e.g. alcohol, sedatives)"},
		{ID: "redflag-neuro", Label: "Neurological warning signs"},
	}
	otherSleepOptions = []Option{
		{ID: "other-apnea", Label: "Obstructive sleep apnea (snoring, breathing pauses, daytime sleepiness)"},
		{ID: "other-rls", Label: "Restless legs syndrome (leg discomfort, urge to move in the evening)"},
		{ID: "other-circadian", Label: "Circadian rhythm sleep-wake disorder (shift work, phase shift)"},
		{ID: "other-narcolepsy", Label: "Suspected narcolepsy or parasomnia"},
	}
	hygieneOptions = []Option{
		{ID: "hygiene-irregular", Label: "Irregular bed and wake times"},
		{ID: "hygiene-time-in-bed", Label: "Long time in bed (well beyond sleep time)"},
		{ID: "hygiene-caffeine", Label: "Caffeine in the late afternoon or evening"},
		{ID: "hygiene-alcohol-nicotine", Label: "Alcohol or nicotine in the evening"},
		{ID: "hygiene-screens", Label: "Intensive screen or device use before sleep"},
	}
)

var (
	acute   = buildAcute()
	chronic = buildChronic()
)

// Acute returns the acute insomnia pathway (Fig. 1).
func Acute() *Pathway { return acute }

// Chronic returns the chronic insomnia pathway (Fig. 2).
func Chronic() *Pathway { return chronic }

// Pathways returns every built-in pathway in display order.
func Pathways() []*Pathway {
	return []*Pathway{acute, chronic}
}

// Lookup returns the pathway with the given ID.
func Lookup(id string) (*Pathway, error) {
	for _, p := range Pathways() {
		if p.ID == strings.ToLower(strings.TrimSpace(id)) {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPathway, id)
}

func buildAcute() *Pathway {
	return &Pathway{
		ID:    PathwayAcute,
		Title: "Fig. 1 – Acute insomnia",
		Label: "Fig. 1 – Acute",
		Nodes: []Node{
			{
				Title: "Node A – Symptoms & duration",
				Questions: []Question{
					{
						ID:      "duration-under-3m",
						Kind:    KindYesNo,
						Label:   "Sleep complaints for less than 3 months",
						Help:    "Counted from the start of the current episode; becomes chronic from 3 months on.",
						Summary: "< 3 months",
					},
					{
						ID:      "frequency-3-nights",
						Kind:    KindYesNo,
						Label:   "Frequency of at least 3 nights per week",
						Help:    "Typical DSM-5/ICSD-3 frequency threshold.",
						Summary: "≥ 3 nights/week",
					},
					{
						ID:      "daytime-impairment",
						Kind:    KindYesNo,
						Label:   "Daytime impairment present",
						Help:    "E.g. fatigue, reduced performance, poor concentration, irritability.",
						Summary: "Daytime impairment",
					},
				},
			},
			{
				Title: "Node B – Red flags / immediate priorities",
				Questions: []Question{{
					ID:      "redflags",
					Kind:    KindMultiSelect,
					Label:   "Red flags (select all that apply)",
					Help:    "If present: prioritize assessment or referral before symptomatic therapy.",
					Summary: "Red flags",
					Options: redFlagOptions,
				}},
			},
			{
				Title: "Node C – Screening for other sleep disorders",
				Questions: []Question{{
					ID:      "other-sleep",
					Kind:    KindMultiSelect,
					Label:   "Signs of … (select all that apply)",
					Help:    "On strong suspicion, assess early or refer.",
					Summary: "Signs of other sleep disorders",
					Options: otherSleepOptions,
				}},
			},
			{
				Title: "Node D – Sleep hygiene & behavior",
				Questions: []Question{{
					ID:      "hygiene",
					Kind:    KindMultiSelect,
					Label:   "Findings (select all that apply)",
					Help:    "Change these factors specifically (stimulus control, restriction, psychoeducation).",
					Summary: "Sleep hygiene findings",
					Options: hygieneOptions,
				}},
			},
		},
		Criteria: Criteria{
			AllOf:     []string{"duration-under-3m", "frequency-3-nights", "daytime-impairment"},
			MetText:   "Acute/short-term insomnia: criteria met",
			UnmetText: "Criteria for acute insomnia not fully met: further assessment and follow-up.",
		},
		Alerts: []Rule{
			AnyOf("redflags", "Red flags present: prioritize urgent assessment or referral."),
		},
		Rules: []Rule{
			AnyOf("other-sleep", "Targeted assessment or referral for possible other sleep disorder(s)."),
			Always("Brief intervention: sleep hygiene, psychoeducation, stimulus control."),
			Always("Follow-up in 2–4 weeks; reassess if symptoms persist or worsen."),
			AnyOf("hygiene", "Address individual hygiene factors (see selection above)."),
			Always("Consider pharmacotherapy only targeted and short-term; weigh benefits and risks."),
		},
	}
}

func buildChronic() *Pathway {
	return &Pathway{
		ID:    PathwayChronic,
		Title: "Fig. 2 – Chronic insomnia",
		Label: "Fig. 2 – Chronic",
		Nodes: []Node{
			{
				Title: "Node 1 – Diagnostic criteria",
				Questions: []Question{
					{
						ID:      "duration-3m-or-more",
						Kind:    KindYesNo,
						Label:   "Sleep complaints for 3 months or more",
						Help:    "Chronic insomnia usually requires a duration of at least 3 months.",
						Summary: "≥ 3 months",
					},
					{
						ID:      "frequency-3-nights",
						Kind:    KindYesNo,
						Label:   "Frequency of at least 3 nights per week",
						Help:    "Typical DSM-5/ICSD-3 frequency threshold.",
						Summary: "≥ 3 nights/week",
					},
					{
						ID:      "daytime-impairment",
						Kind:    KindYesNo,
						Label:   "Daytime impairment present",
						Help:    "E.g. fatigue, reduced performance, poor concentration.",
						Summary: "Daytime impairment",
					},
				},
			},
			{
				Title: "Node 2 – Severity (ISI optional)",
				Questions: []Question{
					{
						ID:      "isi-available",
						Kind:    KindYesNo,
						Label:   "Insomnia Severity Index (ISI) available",
						Help:    "If collected, the ISI supports measuring symptom burden and course.",
						Summary: "ISI recorded",
					},
					{
						ID:        "isi",
						Kind:      KindNumber,
						Label:     "ISI total score (0–28)",
						Help:      "Standard scoring of the instrument.",
						Summary:   "ISI score",
						Min:       0,
						Max:       28,
						DependsOn: "isi-available",
					},
				},
			},
			{
				Title: "Node 3 – Comorbidities & differential sleep disorders",
				Questions: []Question{
					{
						ID:      "other-sleep",
						Kind:    KindMultiSelect,
						Label:   "Signs of other sleep disorder(s) (select all that apply)",
						Help:    "If present, assess or co-treat first.",
						Summary: "Signs of other sleep disorders",
						Options: []Option{
							{ID: "other-apnea", Label: "Obstructive sleep apnea"},
							{ID: "other-rls", Label: "Restless legs syndrome"},
							{ID: "other-circadian", Label: "Circadian rhythm disorder"},
							{ID: "other-narcolepsy", Label: "Narcolepsy or parasomnias"},
						},
					},
					{
						ID:      "comorbidities",
						Kind:    KindMultiSelect,
						Label:   "Relevant comorbidities (select all that apply)",
						Help:    "Comorbidities can affect course and therapy and should be addressed too.",
						Summary: "Comorbidities",
						Options: []Option{
							{ID: "comorbid-depression-anxiety", Label: "Depression or anxiety"},
							{ID: "comorbid-pain", Label: "Chronic pain"},
							{ID: "comorbid-substance", Label: "Substance use"},
							{ID: "comorbid-medical", Label: "Neurological or internal disease"},
						},
					},
				},
			},
			{
				Title: "Node 4 – Access & preference",
				Questions: []Question{
					{
						ID:      "cbt-available",
						Kind:    KindYesNo,
						Label:   "CBT-I available or accessible",
						Help:    "On site, digital or via telemedicine.",
						Summary: "CBT-I available",
					},
					{
						ID:      "prefers-non-drug",
						Kind:    KindYesNo,
						Label:   "Patient prefers non-drug options",
						Help:    "Ask for and document the preference.",
						Summary: "Prefers non-drug options",
					},
				},
			},
			{
				Title: "Node 5 – Red flags",
				Questions: []Question{{
					ID:      "redflags",
					Kind:    KindMultiSelect,
					Label:   "Red flags (select all that apply)",
					Help:    "If present: urgent assessment or referral.",
					Summary: "Red flags",
					Options: []Option{
						{ID: "redflag-suicidality", Label: "Acute suicidality / severe depressive symptoms"},
						{ID: "redflag-psychosis", Label: "Suspected psychosis or mania"},
						{ID: "redflag-substance", Label: "Severe substance use"},
						{ID: "redflag-neuro", Label: "Neurological warning signs"},
					},
				}},
			},
			{
				Title: "Node 6 – Sleep hygiene & behavior",
				Questions: []Question{{
					ID:      "hygiene",
					Kind:    KindMultiSelect,
					Label:   "Findings (select all that apply)",
					Help:    "Address these factors within the CBT-I modules.",
					Summary: "Sleep hygiene findings",
					Options: []Option{
						{ID: "hygiene-irregular", Label: "Irregular bed and wake times"},
						{ID: "hygiene-time-in-bed", Label: "Long time in bed"},
						{ID: "hygiene-caffeine", Label: "Late caffeine"},
						{ID: "hygiene-alcohol-nicotine", Label: "Alcohol or nicotine in the evening"},
						{ID: "hygiene-screens", Label: "Screen use before sleep"},
					},
				}},
			},
		},
		Criteria: Criteria{
			AllOf:     []string{"duration-3m-or-more", "frequency-3-nights", "daytime-impairment"},
			MetText:   "Chronic insomnia: criteria met (provisional diagnosis)",
			UnmetText: "Criteria for chronic insomnia not fully met: further assessment.",
		},
		Alerts: []Rule{
			AnyOf("redflags", "Red flags present: prioritize urgent assessment or referral before therapy."),
		},
		Rules: []Rule{
			AnyOf("other-sleep", "Before or alongside insomnia treatment: assess and treat other sleep disorder(s)."),
			AnyOf("comorbidities", "Address and document comorbidities in parallel."),
			Has("cbt-available", "CBT-I as first line (stimulus control, sleep restriction, cognitive strategies, psychoeducation, sleep hygiene)."),
			Lacks("cbt-available", "If CBT-I is unavailable: CBT-I-based brief programs or digital options; consider referral."),
			Lacks("prefers-non-drug", "If preferred after counselling: consider time-limited pharmacotherapy; weigh benefits and risks."),
			AnyOf("hygiene", "Change sleep hygiene factors specifically (see selected items)."),
			Has("isi-available", "ISI documented (score: %d). Use it to track course and response.").WithValue("isi"),
			Always("Follow-up and therapy adjustment as needed (non-response: intensify or switch)."),
		},
	}
}

package assessment

// RiskLevel orders clinical severity tiers so overall risk can be taken
// as the maximum across instruments. Never compare the string forms.
type RiskLevel int

const (
	RiskMinimal RiskLevel = iota
	RiskMild
	RiskModerate
	RiskModeratelySevere
	RiskSevere
)

var riskNames = [...]string{"minimal", "mild", "moderate", "moderately-severe", "severe"}

func (r RiskLevel) String() string {
	if r < RiskMinimal || r > RiskSevere {
		return "minimal"
	}
	return riskNames[r]
}

// ParseRiskLevel maps a tier name back to its ordered form. Unknown names
// rank as minimal; ok reports whether the name was recognized so callers
// can surface the anomaly.
func ParseRiskLevel(name string) (RiskLevel, bool) {
	for i, n := range riskNames {
		if n == name {
			return RiskLevel(i), true
		}
	}
	return RiskMinimal, false
}

// InstrumentScore is the result of scoring one clinical instrument.
type InstrumentScore struct {
	Score           int      `json:"score"`
	Tier            string   `json:"tier"`
	Interpretation  string   `json:"interpretation"`
	Recommendations []string `json:"recommendations"`
}

var phq9Items = []string{"phq9_1", "phq9_2", "phq9_3", "phq9_4", "phq9_5", "phq9_6", "phq9_7", "phq9_8", "phq9_9"}

// ScorePHQ9 scores the PHQ-9 depression screen. Cutoffs follow
// Kroenke et al.: 0-4 minimal, 5-9 mild, 10-14 moderate, 15-19
// moderately severe, 20-27 severe.
func ScorePHQ9(v View) InstrumentScore {
	score := sumItems(v, phq9Items)
	switch {
	case score <= 4:
		return InstrumentScore{
			Score:          score,
			Tier:           "minimal",
			Interpretation: "Minimal depression symptoms. You appear to be experiencing very few or no symptoms of depression.",
			Recommendations: []string{
				"Continue current wellness practices",
				"Consider preventive mental health strategies",
				"Regular self-care and stress management",
			},
		}
	case score <= 9:
		return InstrumentScore{
			Score:          score,
			Tier:           "mild",
			Interpretation: "Mild depression symptoms. You may be experiencing some symptoms that could benefit from attention.",
			Recommendations: []string{
				"Consider lifestyle changes (exercise, sleep hygiene, social connection)",
				"Mindfulness and stress reduction techniques",
				"Monitor symptoms and consider counseling if they persist or worsen",
			},
		}
	case score <= 14:
		return InstrumentScore{
			Score:          score,
			Tier:           "moderate",
			Interpretation: "Moderate depression symptoms. Your symptoms are interfering with your daily life and well-being.",
			Recommendations: []string{
				"Professional counseling or therapy is recommended",
				"Consider cognitive-behavioral therapy (CBT)",
				"Discuss symptoms with your healthcare provider",
				"Maintain social connections and support systems",
			},
		}
	case score <= 19:
		return InstrumentScore{
			Score:          score,
			Tier:           "moderately-severe",
			Interpretation: "Moderately severe depression symptoms. You are experiencing significant symptoms that require professional attention.",
			Recommendations: []string{
				"Professional mental health treatment is strongly recommended",
				"Consider both therapy and medication evaluation",
				"Regular monitoring by mental health professional",
				"Crisis support plan may be beneficial",
			},
		}
	default:
		return InstrumentScore{
			Score:          score,
			Tier:           "severe",
			Interpretation: "Severe depression symptoms. You are experiencing significant symptoms that require immediate professional attention.",
			Recommendations: []string{
				"Immediate professional mental health evaluation recommended",
				"Consider urgent care or emergency services if having thoughts of self-harm",
				"Medication evaluation likely needed",
				"Intensive therapeutic support recommended",
			},
		}
	}
}

var gad7Items = []string{"gad7_1", "gad7_2", "gad7_3", "gad7_4", "gad7_5", "gad7_6", "gad7_7"}

// ScoreGAD7 scores the GAD-7 anxiety screen. Cutoffs follow Spitzer
// et al.: 0-4 minimal, 5-9 mild, 10-14 moderate, 15-21 severe.
func ScoreGAD7(v View) InstrumentScore {
	score := sumItems(v, gad7Items)
	switch {
	case score <= 4:
		return InstrumentScore{
			Score:          score,
			Tier:           "minimal",
			Interpretation: "Minimal anxiety symptoms. You appear to be experiencing very few anxiety-related concerns.",
			Recommendations: []string{
				"Continue current stress management practices",
				"Regular relaxation and mindfulness techniques",
				"Maintain healthy lifestyle habits",
			},
		}
	case score <= 9:
		return InstrumentScore{
			Score:          score,
			Tier:           "mild",
			Interpretation: "Mild anxiety symptoms. You may be experiencing some worry or anxiety that could benefit from attention.",
			Recommendations: []string{
				"Learn and practice anxiety management techniques",
				"Deep breathing, progressive muscle relaxation",
				"Consider mindfulness-based stress reduction",
				"Monitor triggers and patterns",
			},
		}
	case score <= 14:
		return InstrumentScore{
			Score:          score,
			Tier:           "moderate",
			Interpretation: "Moderate anxiety symptoms. Your anxiety is likely interfering with your daily activities and well-being.",
			Recommendations: []string{
				"Professional counseling for anxiety management is recommended",
				"Cognitive-behavioral therapy (CBT) for anxiety",
				"Consider anxiety support groups",
				"Discuss symptoms with healthcare provider",
			},
		}
	default:
		return InstrumentScore{
			Score:          score,
			Tier:           "severe",
			Interpretation: "Severe anxiety symptoms. You are experiencing significant anxiety that requires professional attention.",
			Recommendations: []string{
				"Professional mental health treatment is strongly recommended",
				"Consider both therapy and medication evaluation",
				"Specialized anxiety treatment programs",
				"Crisis support resources for severe anxiety episodes",
			},
		}
	}
}

var stressItems = []string{"pss_1", "pss_2", "pss_3", "pss_4", "pss_5"}

// ScoreStress scores the short-form Perceived Stress Scale. Reverse
// scoring for pss_4 and pss_5 is already baked into the catalog option
// values, so this is a plain sum: 0-7 low, 8-14 moderate, 15-20 high.
func ScoreStress(v View) InstrumentScore {
	score := sumItems(v, stressItems)
	switch {
	case score <= 7:
		return InstrumentScore{
			Score:          score,
			Tier:           "low",
			Interpretation: "Low stress levels. You appear to be managing life's challenges well.",
			Recommendations: []string{
				"Continue current coping strategies",
				"Maintain work-life balance",
				"Regular self-care practices",
			},
		}
	case score <= 14:
		return InstrumentScore{
			Score:          score,
			Tier:           "moderate",
			Interpretation: "Moderate stress levels. You may benefit from additional stress management techniques.",
			Recommendations: []string{
				"Develop stronger stress management skills",
				"Consider stress reduction workshops or apps",
				"Time management and organization strategies",
				"Regular exercise and relaxation",
			},
		}
	default:
		return InstrumentScore{
			Score:          score,
			Tier:           "high",
			Interpretation: "High stress levels. Your stress levels may be impacting your health and well-being significantly.",
			Recommendations: []string{
				"Professional support for stress management is recommended",
				"Consider counseling for stress-related concerns",
				"Evaluate major life stressors and potential changes",
				"Medical evaluation for stress-related health impacts",
			},
		}
	}
}

var wellBeingItems = []string{"who5_1", "who5_2", "who5_3", "who5_4", "who5_5"}

// ScoreWellBeing scores the WHO-5 Well-Being Index. The 0-25 raw sum is
// multiplied by 4 to a 0-100 percentage score, always a multiple of 4.
func ScoreWellBeing(v View) InstrumentScore {
	score := sumItems(v, wellBeingItems) * 4
	switch {
	case score < 28:
		return InstrumentScore{
			Score:          score,
			Tier:           "poor",
			Interpretation: "Poor well-being. You may be experiencing significant challenges with your overall well-being and quality of life.",
			Recommendations: []string{
				"Professional mental health evaluation is recommended",
				"Focus on basic self-care and daily structure",
				"Consider comprehensive mental health support",
				"Screen for depression and other mental health conditions",
			},
		}
	case score < 52:
		return InstrumentScore{
			Score:          score,
			Tier:           "below-average",
			Interpretation: "Below-average well-being. There are areas of your life and mood that could benefit from attention and improvement.",
			Recommendations: []string{
				"Consider counseling to improve overall well-being",
				"Focus on activities that bring joy and meaning",
				"Strengthen social connections and support systems",
				"Develop healthy routines and habits",
			},
		}
	case score < 68:
		return InstrumentScore{
			Score:          score,
			Tier:           "average",
			Interpretation: "Average well-being. You have a moderate sense of well-being with room for growth and improvement.",
			Recommendations: []string{
				"Continue positive practices that support well-being",
				"Consider areas for personal growth and development",
				"Maintain social connections and meaningful activities",
				"Regular self-reflection and goal-setting",
			},
		}
	case score < 84:
		return InstrumentScore{
			Score:          score,
			Tier:           "good",
			Interpretation: "Good well-being. You have a strong sense of overall well-being and life satisfaction.",
			Recommendations: []string{
				"Continue current practices that support your well-being",
				"Consider helping others or community involvement",
				"Maintain balance and prevent burnout",
				"Regular wellness check-ins and self-care",
			},
		}
	default:
		return InstrumentScore{
			Score:          score,
			Tier:           "excellent",
			Interpretation: "Excellent well-being. You have very strong overall well-being and life satisfaction.",
			Recommendations: []string{
				"Continue excellent self-care and life management",
				"Consider mentoring others or sharing your strategies",
				"Maintain current positive practices",
				"Stay vigilant for life changes that might impact well-being",
			},
		}
	}
}

func sumItems(v View, ids []string) int {
	total := 0
	for _, id := range ids {
		total += v.Item(id)
	}
	return total
}

package assessment

// The assessment combines validated clinical instruments:
//   - PHQ-9 (Patient Health Questionnaire-9) for depression screening
//   - GAD-7 (Generalized Anxiety Disorder 7-item) for anxiety screening
//   - PSS (Perceived Stress Scale, short form) for stress assessment
//   - WHO-5 Well-Being Index for general well-being
//
// Question wording, option values and cutoffs follow the published
// instruments and must not be edited without clinical review.

// twoWeekFrequency is the standard PHQ-9/GAD-7 response set.
var twoWeekFrequency = []Option{
	{Value: 0, Label: "Not at all"},
	{Value: 1, Label: "Several days"},
	{Value: 2, Label: "More than half the days"},
	{Value: 3, Label: "Nearly every day"},
}

// monthFrequency is the standard PSS response set.
var monthFrequency = []Option{
	{Value: 0, Label: "Never"},
	{Value: 1, Label: "Almost never"},
	{Value: 2, Label: "Sometimes"},
	{Value: 3, Label: "Fairly often"},
	{Value: 4, Label: "Very often"},
}

// monthFrequencyReversed carries the inverted values for reverse-scored
// PSS items. The scoring function sums values as given.
var monthFrequencyReversed = []Option{
	{Value: 4, Label: "Never"},
	{Value: 3, Label: "Almost never"},
	{Value: 2, Label: "Sometimes"},
	{Value: 1, Label: "Fairly often"},
	{Value: 0, Label: "Very often"},
}

// who5Frequency is the WHO-5 six-point response set.
var who5Frequency = []Option{
	{Value: 0, Label: "At no time"},
	{Value: 1, Label: "Some of the time"},
	{Value: 2, Label: "Less than half of the time"},
	{Value: 3, Label: "More than half of the time"},
	{Value: 4, Label: "Most of the time"},
	{Value: 5, Label: "All of the time"},
}

// Sections is the full assessment catalog in presentation order.
var Sections = []Section{
	{
		ID:               "demographic",
		Title:            "About You",
		Description:      "Help us understand your background to provide personalized recommendations.",
		EstimatedMinutes: 1,
		ClinicalPurpose:  "Gather demographic data for personalized treatment matching and cultural considerations",
		Questions: []Question{
			{
				ID: "age_group", Category: CategoryDemographic, Type: TypeMultipleChoice, Required: true,
				Text: "What is your age?",
				Options: []Option{
					{Value: "18-25", Label: "18-25"},
					{Value: "26-35", Label: "26-35"},
					{Value: "36-45", Label: "36-45"},
					{Value: "46-55", Label: "46-55"},
					{Value: "56-65", Label: "56-65"},
					{Value: "66+", Label: "66+"},
				},
			},
			{
				ID: "relationship_status", Category: CategoryDemographic, Type: TypeMultipleChoice, Required: true,
				Text: "What is your current relationship status?",
				Options: []Option{
					{Value: "single", Label: "Single"},
					{Value: "dating", Label: "Dating/In a relationship"},
					{Value: "married", Label: "Married"},
					{Value: "divorced", Label: "Divorced"},
					{Value: "widowed", Label: "Widowed"},
					{Value: "complicated", Label: "It's complicated"},
					{Value: "prefer_not_say", Label: "Prefer not to say"},
				},
			},
			{
				ID: "therapy_experience", Category: CategoryDemographic, Type: TypeMultipleChoice, Required: true,
				Text: "Have you ever been to therapy before?",
				Options: []Option{
					{Value: "never", Label: "No, I've never been to therapy"},
					{Value: "past_helpful", Label: "Yes, and it was helpful"},
					{Value: "past_unhelpful", Label: "Yes, but it wasn't very helpful"},
					{Value: "currently", Label: "I'm currently in therapy"},
				},
			},
			{
				ID: "therapy_preference", Category: CategoryDemographic, Type: TypeMultipleChoice, Required: true,
				Text: "Do you have a preference for your therapist's gender?",
				Options: []Option{
					{Value: "no_preference", Label: "No preference"},
					{Value: "female", Label: "Female"},
					{Value: "male", Label: "Male"},
					{Value: "non_binary", Label: "Non-binary"},
				},
			},
			{
				ID: "primary_concern", Category: CategoryDemographic, Type: TypeMultipleChoice, Required: true,
				Text: "What's the primary reason you're seeking therapy?",
				Options: []Option{
					{Value: "depression", Label: "Depression"},
					{Value: "anxiety", Label: "Anxiety"},
					{Value: "stress", Label: "Stress and burnout"},
					{Value: "relationships", Label: "Relationship issues"},
					{Value: "trauma", Label: "Trauma and PTSD"},
					{Value: "grief", Label: "Grief and loss"},
					{Value: "self_esteem", Label: "Self-esteem and confidence"},
					{Value: "life_transitions", Label: "Major life changes"},
					{Value: "family_issues", Label: "Family conflicts"},
					{Value: "work_stress", Label: "Work and career stress"},
					{Value: "eating_concerns", Label: "Eating and body image"},
					{Value: "addiction", Label: "Substance use concerns"},
					{Value: "other", Label: "Something else"},
				},
			},
			{
				ID: "therapy_goals", Category: CategoryDemographic, Type: TypeMultipleChoice, Required: true,
				Text: "What do you hope to get out of therapy? (Select all that apply)",
				Options: []Option{
					{Value: "feel_better", Label: "Feel less sad, anxious, or stressed"},
					{Value: "coping_skills", Label: "Learn better coping strategies"},
					{Value: "relationships", Label: "Improve my relationships"},
					{Value: "self_awareness", Label: "Better understand myself"},
					{Value: "confidence", Label: "Build confidence and self-esteem"},
					{Value: "life_changes", Label: "Navigate major life changes"},
					{Value: "communication", Label: "Communicate more effectively"},
					{Value: "habits", Label: "Change unhealthy patterns or habits"},
				},
			},
		},
	},
	{
		ID:               "phq9",
		Title:            "How You've Been Feeling",
		Description:      "These questions help us understand how you've been feeling emotionally over the past two weeks.",
		EstimatedMinutes: 2,
		ClinicalPurpose:  "PHQ-9 assessment for depression severity screening with validated clinical cutoff scores",
		Questions: []Question{
			{
				ID: "phq9_1", Category: CategoryDepression, Type: TypeScale, Required: true,
				Text:     "Over the last 2 weeks, how often have you been bothered by little interest or pleasure in doing things?",
				Options:  twoWeekFrequency,
				HelpText: "Think about activities you normally enjoy",
			},
			{
				ID: "phq9_2", Category: CategoryDepression, Type: TypeScale, Required: true,
				Text:    "Over the last 2 weeks, how often have you been bothered by feeling down, depressed, or hopeless?",
				Options: twoWeekFrequency,
			},
			{
				ID: "phq9_3", Category: CategoryDepression, Type: TypeScale, Required: true,
				Text:    "Over the last 2 weeks, how often have you been bothered by trouble falling or staying asleep, or sleeping too much?",
				Options: twoWeekFrequency,
			},
			{
				ID: "phq9_4", Category: CategoryDepression, Type: TypeScale, Required: true,
				Text:    "Over the last 2 weeks, how often have you been bothered by feeling tired or having little energy?",
				Options: twoWeekFrequency,
			},
			{
				ID: "phq9_5", Category: CategoryDepression, Type: TypeScale, Required: true,
				Text:    "Over the last 2 weeks, how often have you been bothered by poor appetite or overeating?",
				Options: twoWeekFrequency,
			},
			{
				ID: "phq9_6", Category: CategoryDepression, Type: TypeScale, Required: true,
				Text:    "Over the last 2 weeks, how often have you been bothered by feeling bad about yourself — or that you are a failure or have let yourself or your family down?",
				Options: twoWeekFrequency,
			},
			{
				ID: "phq9_7", Category: CategoryDepression, Type: TypeScale, Required: true,
				Text:    "Over the last 2 weeks, how often have you been bothered by trouble concentrating on things, such as reading the newspaper or watching television?",
				Options: twoWeekFrequency,
			},
			{
				ID: "phq9_8", Category: CategoryDepression, Type: TypeScale, Required: true,
				Text:    "Over the last 2 weeks, how often have you been bothered by moving or speaking so slowly that other people could have noticed? Or the opposite — being so fidgety or restless that you have been moving around a lot more than usual?",
				Options: twoWeekFrequency,
			},
			{
				ID: "phq9_9", Category: CategoryDepression, Type: TypeScale, Required: true,
				Text:            "Over the last 2 weeks, how often have you been bothered by thoughts that you would be better off dead, or of hurting yourself in some way?",
				Options:         twoWeekFrequency,
				ClinicalContext: "CRITICAL: Scores > 0 require immediate risk assessment and safety planning",
			},
		},
	},
	{
		ID:               "gad7",
		Title:            "Anxiety Assessment",
		Description:      "These questions help us understand your experience with worry and anxiety.",
		EstimatedMinutes: 2,
		ClinicalPurpose:  "GAD-7 assessment for anxiety disorder screening with validated cutoff scores",
		Questions: []Question{
			{
				ID: "gad7_1", Category: CategoryAnxiety, Type: TypeScale, Required: true,
				Text:    "Over the last 2 weeks, how often have you been bothered by feeling nervous, anxious, or on edge?",
				Options: twoWeekFrequency,
			},
			{
				ID: "gad7_2", Category: CategoryAnxiety, Type: TypeScale, Required: true,
				Text:    "Over the last 2 weeks, how often have you been bothered by not being able to stop or control worrying?",
				Options: twoWeekFrequency,
			},
			{
				ID: "gad7_3", Category: CategoryAnxiety, Type: TypeScale, Required: true,
				Text:    "Over the last 2 weeks, how often have you been bothered by worrying too much about different things?",
				Options: twoWeekFrequency,
			},
			{
				ID: "gad7_4", Category: CategoryAnxiety, Type: TypeScale, Required: true,
				Text:    "Over the last 2 weeks, how often have you been bothered by trouble relaxing?",
				Options: twoWeekFrequency,
			},
			{
				ID: "gad7_5", Category: CategoryAnxiety, Type: TypeScale, Required: true,
				Text:    "Over the last 2 weeks, how often have you been bothered by being so restless that it is hard to sit still?",
				Options: twoWeekFrequency,
			},
			{
				ID: "gad7_6", Category: CategoryAnxiety, Type: TypeScale, Required: true,
				Text:    "Over the last 2 weeks, how often have you been bothered by becoming easily annoyed or irritable?",
				Options: twoWeekFrequency,
			},
			{
				ID: "gad7_7", Category: CategoryAnxiety, Type: TypeScale, Required: true,
				Text:    "Over the last 2 weeks, how often have you been bothered by feeling afraid, as if something awful might happen?",
				Options: twoWeekFrequency,
			},
		},
	},
	{
		ID:               "stress",
		Title:            "Stress Assessment",
		Description:      "These questions help us understand how you perceive and manage stress in your life.",
		EstimatedMinutes: 2,
		ClinicalPurpose:  "Perceived Stress Scale to assess stress levels and coping capacity",
		Questions: []Question{
			{
				ID: "pss_1", Category: CategoryStress, Type: TypeScale, Required: true,
				Text:    "In the last month, how often have you been upset because of something that happened unexpectedly?",
				Options: monthFrequency,
			},
			{
				ID: "pss_2", Category: CategoryStress, Type: TypeScale, Required: true,
				Text:    "In the last month, how often have you felt that you were unable to control the important things in your life?",
				Options: monthFrequency,
			},
			{
				ID: "pss_3", Category: CategoryStress, Type: TypeScale, Required: true,
				Text:    "In the last month, how often have you felt nervous and \"stressed\"?",
				Options: monthFrequency,
			},
			{
				ID: "pss_4", Category: CategoryStress, Type: TypeScale, Required: true,
				Text:            "In the last month, how often have you felt confident about your ability to handle your personal problems?",
				Options:         monthFrequencyReversed,
				ClinicalContext: "Reverse scored item - higher confidence = lower stress score",
			},
			{
				ID: "pss_5", Category: CategoryStress, Type: TypeScale, Required: true,
				Text:            "In the last month, how often have you felt that things were going your way?",
				Options:         monthFrequencyReversed,
				ClinicalContext: "Reverse scored item - things going well = lower stress score",
			},
		},
	},
	{
		ID:               "wellbeing",
		Title:            "Well-being Check",
		Description:      "These final questions help us understand your overall sense of well-being.",
		EstimatedMinutes: 1,
		ClinicalPurpose:  "WHO-5 Well-Being Index to assess general psychological well-being",
		Questions: []Question{
			{
				ID: "who5_1", Category: CategoryWellBeing, Type: TypeScale, Required: true,
				Text:    "Over the last 2 weeks, I have felt cheerful and in good spirits",
				Options: who5Frequency,
			},
			{
				ID: "who5_2", Category: CategoryWellBeing, Type: TypeScale, Required: true,
				Text:    "Over the last 2 weeks, I have felt calm and relaxed",
				Options: who5Frequency,
			},
			{
				ID: "who5_3", Category: CategoryWellBeing, Type: TypeScale, Required: true,
				Text:    "Over the last 2 weeks, I have felt active and vigorous",
				Options: who5Frequency,
			},
			{
				ID: "who5_4", Category: CategoryWellBeing, Type: TypeScale, Required: true,
				Text:    "Over the last 2 weeks, I woke up feeling fresh and rested",
				Options: who5Frequency,
			},
			{
				ID: "who5_5", Category: CategoryWellBeing, Type: TypeScale, Required: true,
				Text:    "Over the last 2 weeks, my daily life has been filled with things that interest me",
				Options: who5Frequency,
			},
		},
	},
}

// TotalQuestions reports the number of questions across all sections.
func TotalQuestions() int {
	n := 0
	for _, s := range Sections {
		n += len(s.Questions)
	}
	return n
}

// FindQuestion looks a question up by ID across all sections.
func FindQuestion(id string) (Question, bool) {
	for _, s := range Sections {
		for _, q := range s.Questions {
			if q.ID == id {
				return q, true
			}
		}
	}
	return Question{}, false
}

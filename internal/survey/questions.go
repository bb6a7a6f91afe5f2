package survey

// EnvironmentSubject is the sentinel subject name for the environment audit,
// the one questionnaire that covers infrastructure and logistics instead of
// a course.
const EnvironmentSubject = "ENVIRONNEMENT_GLOBAL"

// AnswersPerForm is the number of required answers on every questionnaire.
const AnswersPerForm = 5

// Kind distinguishes the two question widgets.
type Kind int

const (
	// KindScale is a 1..5 satisfaction scale.
	KindScale Kind = iota
	// KindChoice is a single pick among enumerated options.
	KindChoice
)

// Question describes one questionnaire entry. ID matches the column the
// answer is persisted to.
type Question struct {
	ID      string
	Label   string
	Kind    Kind
	Min     int      // scale bound, KindScale only
	Max     int      // scale bound, KindScale only
	Options []string // KindChoice only
}

// TransportModes are the accepted answers for the commute question. They are
// also the keys of the transport distribution on the admin panel.
var TransportModes = []string{"À pied", "Bus", "Taxi collectif", "Voiture personnelle", "Covoiturage"}

// JobSituations are the accepted answers for the student-job question.
var JobSituations = []string{"Non", "Oui, à temps partiel", "Oui, à temps plein"}

// YesNo is the Oui/Non pair used by the laptop-ownership question. The admin
// panel counts the literal "Oui" when computing the ownership rate.
var YesNo = []string{"Oui", "Non"}

// PedagogyQuestions returns the five per-course questions, in display order.
func PedagogyQuestions() []Question {
	return []Question{
		{ID: "q1", Label: "Clarté du cours et des supports", Kind: KindScale, Min: 1, Max: 5},
		{ID: "q2", Label: "Disponibilité de l'enseignant", Kind: KindScale, Min: 1, Max: 5},
		{ID: "q3", Label: "Rythme et charge de travail", Kind: KindScale, Min: 1, Max: 5},
		{ID: "q4", Label: "Utilité des travaux pratiques", Kind: KindScale, Min: 1, Max: 5},
		{ID: "q5", Label: "Satisfaction globale du module", Kind: KindScale, Min: 1, Max: 5},
	}
}

// EnvironmentQuestions returns the five environment-audit questions, in
// display order.
func EnvironmentQuestions() []Question {
	return []Question{
		{ID: "q6_jobs", Label: "Exercez-vous une activité salariée ?", Kind: KindChoice, Options: JobSituations},
		{ID: "q7_rooms", Label: "État des salles de cours", Kind: KindScale, Min: 1, Max: 5},
		{ID: "q8_resources", Label: "Accès aux ressources (bibliothèque, matériel)", Kind: KindScale, Min: 1, Max: 5},
		{ID: "q9_transport", Label: "Moyen de transport principal", Kind: KindChoice, Options: TransportModes},
		{ID: "q10_laptop", Label: "Disposez-vous d'un ordinateur portable ?", Kind: KindChoice, Options: YesNo},
	}
}

// QuestionsFor returns the questionnaire for the given subject.
func QuestionsFor(subject string) []Question {
	if subject == EnvironmentSubject {
		return EnvironmentQuestions()
	}
	return PedagogyQuestions()
}

// DefaultSubjects is the course catalog evaluated by default when the config
// file does not override it.
func DefaultSubjects() []string {
	return []string{
		"Algorithmique",
		"Base de données",
		"Réseaux",
		"Systèmes d'exploitation",
		"Programmation web",
		"Génie logiciel",
		"Mathématiques discrètes",
		"Probabilités et statistiques",
		"Architecture des ordinateurs",
		"Anglais technique",
		"Gestion de projet",
	}
}

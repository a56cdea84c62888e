package serena

// Reply pools, one per category. Every pool is non-empty; the default pool
// answers anything the classifier cannot place.
var categoryResponses = map[Category][]string{
	CategoryHappy: {
		"¡Me encanta verte tan feliz! 😊 Comparte conmigo qué te hace sentir así.",
		"Tu alegría es contagiosa ✨ ¿Qué momento especial estás viviendo?",
		"¡Qué maravilloso! Celebremos juntos este momento 🎉",
	},
	CategorySad: {
		"Entiendo que estés pasando por un momento difícil 💙 Estoy aquí para ti.",
		"Está bien sentirse triste a veces. ¿Quieres hablar sobre lo que sientes?",
		"Tus emociones son válidas. Recuerda que esto también pasará 🌈",
	},
	CategoryAnxious: {
		"Respiremos juntos. Inhala... exhala... 🌬️ Estás en un lugar seguro.",
		"La ansiedad puede ser abrumadora. ¿Qué te ayudaría a sentirte más tranquilo?",
		"Recuerda: este momento pasará. Estás siendo muy valiente 💪",
	},
	CategoryAngry: {
		"Veo que estás molesto. Es válido sentir enojo. ¿Qué lo provocó?",
		"El enojo es una emoción natural. Hablemos sobre lo que te molesta 🔥",
		"Está bien estar enojado. Juntos encontraremos una forma de procesarlo.",
	},
	CategoryCalm: {
		"Qué hermosa sensación de calma ☮️ Disfruta este momento de paz.",
		"La tranquilidad es un regalo. ¿Qué te ayudó a encontrar esta calma?",
		"Me alegra verte en paz 🧘‍♀️ Cuéntame más sobre tu día.",
	},
	CategoryConfused: {
		"La confusión es el primer paso hacia la claridad 🤔 Hablemos sobre ello.",
		"Está bien no tener todas las respuestas. ¿En qué puedo ayudarte?",
		"Tomemos un momento para ordenar tus pensamientos juntos 💭",
	},
	CategoryDefault: {
		"Gracias por compartir conmigo. ¿Hay algo más que quieras contarme?",
		"Estoy aquí para escucharte siempre que lo necesites 💜",
		"Tus sentimientos importan. Cuéntame más sobre lo que piensas.",
	},
}

var greetingPool = []string{
	"¡Hola! Soy Serena 🌸 ¿Cómo te sientes hoy?",
	"Hola, es un placer verte de nuevo 💜",
	"¡Bienvenido! Estoy aquí para escucharte 🌟",
}

var motivationPool = []string{
	"Eres más fuerte de lo que crees 💪",
	"Cada día es una nueva oportunidad para crecer 🌱",
	"Recuerda ser gentil contigo mismo/a 🌸",
	"Tus esfuerzos valen la pena, sigue adelante ✨",
	"Mereces amor y cuidado, especialmente de ti mismo/a 💜",
}

var selfCarePool = []string{
	"¿Has tomado agua hoy? La hidratación es importante 💧",
	"Recuerda tomarte un descanso. Tu bienestar es prioridad ☕",
	"¿Qué tal una pausa para respirar profundamente? 🌬️",
	"Un pequeño paseo puede hacer maravillas por tu ánimo 🚶",
	"No olvides comer algo nutritivo hoy 🥗",
}

// listeningPool answers messages that match no intent and no emotion.
var listeningPool = []string{
	"Cuéntame más sobre eso. Estoy escuchando atentamente 👂",
	"Entiendo. ¿Cómo te hace sentir eso?",
	"Gracias por compartir. ¿Hay algo más en tu mente?",
	"Tus pensamientos son importantes. Sigue expresándote 💭",
	"Estoy aquí para ti. ¿Qué más quieres contarme?",
}

// Fixed single replies for the intent branches.
const (
	gratitudeReply = "¡De nada! Siempre estaré aquí para ti 💜"
	farewellReply  = "Hasta pronto. Cuídate mucho 🌸"
	supportReply   = "Estoy aquí para apoyarte. Recuerda que eres valiente y capaz de superar esto 💪✨"
)

package serena

import "strings"

// Mood-of-the-moment phrases. This taxonomy is keyed by the literal emotion
// labels of the diary and is separate from the conversational reply pools.
var phrasePools = []struct {
	triggers []string
	phrases  []string
}{
	{[]string{"feliz", "alegre", "contento"}, []string{
		"Tu alegría ilumina el día ✨ Sigue brillando",
		"La felicidad se refleja en todo lo que haces 🌟",
		"Qué hermoso verte tan radiante hoy 😊",
		"Tu sonrisa es tu mejor accesorio 💫",
	}},
	{[]string{"triste", "deprimido"}, []string{
		"Las tormentas pasan, el sol siempre vuelve 🌤️",
		"Está bien no estar bien. Mañana será un nuevo día 💙",
		"Tu fuerza está en aceptar cómo te sientes 🌊",
		"Recuerda: esto también pasará, eres más fuerte de lo que crees 💪",
	}},
	{[]string{"neutral", "normal"}, []string{
		"La calma también es valiosa, disfruta este momento ☁️",
		"En la neutralidad encuentras claridad 🧘",
		"No todos los días son extraordinarios, y está bien 🌿",
		"A veces, simplemente estar es suficiente 🍃",
	}},
	{[]string{"enamorado", "amor"}, []string{
		"El amor te hace brillar de forma especial 💕",
		"Qué hermoso sentir mariposas en el estómago 🦋",
		"El amor es el motor más poderoso del universo ❤️",
		"Disfruta cada momento de este hermoso sentimiento 💖",
	}},
	{[]string{"ansioso", "nervioso", "preocupado"}, []string{
		"Respira hondo. Estás a salvo en este momento 🌬️",
		"Un paso a la vez. Tú puedes con esto 🦋",
		"La ansiedad miente. Tú eres capaz y valiente 💪",
		"Ancla tu mente al presente. Aquí y ahora estás bien 🧘",
	}},
	{[]string{"enojado", "molesto", "frustrado"}, []string{
		"El enojo es energía. Canalízala de forma constructiva ⚡",
		"Respira. Tu paz mental vale más que cualquier discusión 🌊",
		"Está bien sentir enojo, pero no dejes que te controle 🔥",
		"Tras la tormenta, siempre viene la calma 🌈",
	}},
}

var defaultPhrasePool = []string{
	"Cada emoción es válida y te ayuda a crecer 🌱",
	"Honrar tus sentimientos es un acto de amor propio 💜",
	"Gracias por compartir tu día conmigo 🌸",
	"Tus emociones son tu brújula interior 🧭",
}

// PersonalizedPhrase returns a short affirming phrase for the given emotion
// label. Labels are matched by lower-cased substring containment, first match
// wins; unknown labels draw from a default pool.
func (r *Responder) PersonalizedPhrase(emotion string) string {
	lower := strings.ToLower(emotion)
	for _, pool := range phrasePools {
		for _, trigger := range pool.triggers {
			if strings.Contains(lower, trigger) {
				return r.pick(pool.phrases)
			}
		}
	}
	return r.pick(defaultPhrasePool)
}

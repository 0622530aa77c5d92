package summarizer

import "strings"

// TranscriptPlaceholder is replaced by the full transcript in a user prompt template.
const TranscriptPlaceholder = "{transcript}"

// Prompt is the pair of instructions sent with each transcript.
type Prompt struct {
	System       string
	UserTemplate string
}

// Render substitutes the transcript into the user template.
func (p Prompt) Render(transcript string) string {
	return strings.ReplaceAll(p.UserTemplate, TranscriptPlaceholder, transcript)
}

// DefaultPrompt returns the built-in standup prompt for language. Languages
// other than French get the English prompt.
func DefaultPrompt(language string) Prompt {
	if strings.EqualFold(language, "fr") {
		return Prompt{System: systemPromptFR, UserTemplate: userPromptFR}
	}
	return Prompt{System: systemPromptEN, UserTemplate: userPromptEN}
}

// WithOverrides replaces the non-empty fields of p.
func (p Prompt) WithOverrides(system, userTemplate string) Prompt {
	if system != "" {
		p.System = system
	}
	if userTemplate != "" {
		p.UserTemplate = userTemplate
	}
	return p
}

const systemPromptFR = "Tu es un assistant chargé de générer un résumé structuré en Markdown d'un compte rendu de daily meeting de développeurs."

const userPromptFR = `Analyse le texte fourni, identifie les sujets discutés, les tâches réalisées, les plans de la journée, les points techniques, les blocages éventuels et les actions à suivre.

Suis strictement le format suivant :

### Travail d'hier
- Liste concise des réalisations de la veille.

### Organisation de la journée
- Liste des réunions, priorités ou tâches prévues aujourd'hui.

### Revues de code
- Liste des PR à reviewer ou en attente.

### Points techniques discutés
- Liste des problèmes, propositions ou réflexions techniques soulevées.

### Action Items
- Liste à cocher [ ] des prochaines actions identifiées.

Règles :
- Utilise un ton professionnel et factuel.
- Ne garde aucune phrase inutile, blague ou digression.
- Résume de manière claire et synthétique (max 10 lignes par section).
- Corrige la grammaire et les formulations orales.
- Si une section n'a aucun contenu, ne l'affiche pas.

Transcript du daily meeting :
---
{transcript}
---`

const systemPromptEN = "You are an assistant tasked with generating a structured Markdown summary of a developer daily meeting report."

const userPromptEN = `Analyze the provided text, identify the topics discussed, the tasks completed, the plans for the day, the technical points, any potential blockers, and the follow-up actions.

Strictly follow the format below:

### Work from yesterday
- Concise list of yesterday's achievements.

### Today's organization
- List of meetings, priorities, or tasks planned for today.

### Code reviews
- List of PRs to review or pending.

### Technical points discussed
- List of problems, proposals, or technical reflections raised.

### Action Items
- Checklist [ ] of the next identified actions.

Rules:
- Use a professional and factual tone.
- Do not keep any useless phrases, jokes, or digressions.
- Summarize clearly and succinctly (max 10 lines per section).
- Correct grammar and spoken formulations.
- If a section has no content, do not display it.

Transcript of the daily meeting:
---
{transcript}
---`

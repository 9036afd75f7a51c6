package assistant

import "fmt"

// HelperGreeting opens every helper conversation.
const HelperGreeting = "Hello! I'm Lunai, your friendly care assistant. How can I help you and your family today?"

const helperSystem = `You are Lunai, a warm and patient care assistant for a family looking after their grandmother at home.
Give short, practical answers about caregiving, wellness, household organisation and family coordination.
Do not give medical diagnoses; suggest contacting a doctor or pharmacist when appropriate.`

func groundedPrompt(query string) string {
	return fmt.Sprintf("Provide helpful information about: %s. Focus on practical tips and resources relevant for family caregivers.", query)
}

func mealPlanPrompt(preference string) string {
	return fmt.Sprintf(`Create a simple, healthy and easy-to-prepare 3-day meal plan, primarily for an elderly person. The user's preference is: %q.

Respond with only a JSON array and no other text. Each element has the form
{"day": "Day 1", "meals": {"breakfast": "...", "lunch": "...", "dinner": "..."}}.
Keep each meal description brief, for example "Oatmeal with berries" or "Baked salmon with roasted vegetables".`, preference)
}

func memoryStoryPrompt(note string) string {
	return fmt.Sprintf(`Based on this image and the user's note, write a short, heartfelt story about this memory as if you're recounting it for a family photo album.
User's note: %q
Keep the story to 2-4 sentences. The tone should be warm and nostalgic.`, note)
}

func liveScorePrompt(team, opponent string) string {
	return fmt.Sprintf(`Get the live score for the %s vs %s hockey game. Respond with only the data in this exact format, without any extra text or explanation: TEAM_SCORE,OPPONENT_SCORE,PERIOD,TIME_REMAINING. For example: 3,1,2,10:45`, team, opponent)
}

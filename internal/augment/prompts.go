package augment

// Prompts for the augmentation pipeline. All prompts are centralized
// here for easy maintenance.

// systemPrompt pins the output contract for every call.
const systemPrompt = "You are a coordinator agent for a fine dining restaurant. " +
	"Return only valid JSON without markdown formatting or code blocks."

// coordinatorPrompt asks the model for the consolidated kitchen
// briefing for one reservation. The response shape matches the
// coordinator_summary section of the dataset.
const coordinatorPrompt = `You are a coordination agent for a fine dining restaurant. Review the diner's
history and upcoming reservation, then produce the kitchen briefing for that
reservation.

Diner Information:
%s

Upcoming Reservation:
%s

For every dish that needs special handling, write one kitchen note with:
- "note": a short, actionable instruction for the kitchen
- "dish": the dish it applies to (use the exact order item name)
- "urgency": "red" for safety-critical issues such as allergies,
  "orange" for important preferences, "green" for nice-to-have touches
- "tags": short dietary or special-request markers such as "gluten free",
  "allergy", "celebration"

Respond in the following JSON format:
{
  "kitchen_notes": [
    {"note": "...", "dish": "...", "urgency": "red|orange|green", "tags": ["..."]}
  ],
  "priority_alerts": [
    {"alert": "...", "category": "dietary|experience|service", "for_dish": "..."}
  ],
  "guest_profile": {
    "dining_style": "...",
    "preferences": ["..."]
  },
  "service_recommendations": ["..."]
}

Return only the JSON with no additional text.`

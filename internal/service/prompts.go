package service

import (
	"fmt"
	"strings"

	"shopsmart-ai/internal/dto"
	"shopsmart-ai/internal/llm"
)

// buildProductQAMessages builds the primary question-answering prompt. The
// model is asked for plain answer text, not JSON.
func buildProductQAMessages(req *dto.ProductQARequest) []llm.Message {
	prompt := fmt.Sprintf(
		"You are a senior retail product expert. Provide a clear, practical, and actionable answer to the user's product question.\n"+
			"Strict rules:\n"+
			"- Start directly with the answer in 1-2 sentences (no fluff).\n"+
			"- Then add up to 3 bullet points with specifics (features, how-to steps, suitability).\n"+
			"- If question is irrelevant to the product, say so and suggest what to ask.\n"+
			"- Keep it focused on this product only.\n\n"+
			"Product: %s\n"+
			"Category: %s\n"+
			"Details: %s\n"+
			"User question: %s\n\n"+
			"Special handling for cooking/recipes:\n"+
			"- If the question asks how to cook, make, or a recipe (e.g., fried rice) and the product is a food ingredient (rice, pantry item, oil, sauce), provide step-by-step instructions using THIS product.\n"+
			"- Keep steps concise (4-8 steps), include quantities when obvious, and note tips to avoid sticking/burning.\n\n"+
			"Return ONLY the final answer text (no JSON).",
		req.ProductName, req.Category, req.ProductDescription, req.UserQuestion,
	)

	return []llm.Message{
		{Role: llm.RoleSystem, Content: "You answer product questions clearly with concise, structured guidance."},
		{Role: llm.RoleUser, Content: prompt},
	}
}

// buildFollowUpMessages asks for 2-3 follow-up questions a shopper might ask
// next, given the answer just produced. Output is hinted as a JSON array.
func buildFollowUpMessages(req *dto.ProductQARequest, answer string) []llm.Message {
	prompt := fmt.Sprintf(
		"Product: %s\nCategory: %s\nQuestion: %s\nAnswer: %s\n"+
			"Return ONLY a JSON array of strings.",
		req.ProductName, req.Category, req.UserQuestion, answer,
	)

	return []llm.Message{
		{Role: llm.RoleSystem, Content: "Generate 2-3 concise follow-up questions a shopper might ask next about THIS product."},
		{Role: llm.RoleUser, Content: prompt},
	}
}

func buildSearchMessages(query string) []llm.Message {
	return []llm.Message{
		{Role: llm.RoleSystem, Content: "Extract relevant product names or keywords from the user's shopping query. " +
			"Return ONLY a JSON object with key 'productNames' as an array of up to 6 strings. No extra text."},
		{Role: llm.RoleUser, Content: query},
	}
}

// describeCart renders a human-readable cart summary, one "label (category)"
// entry per item. An empty cart becomes the literal phrase "no items".
func describeCart(cart []dto.CartItem) string {
	if len(cart) == 0 {
		return "no items"
	}
	parts := make([]string, 0, len(cart))
	for _, item := range cart {
		parts = append(parts, fmt.Sprintf("%s (%s)", item.Label(), item.Category))
	}
	return strings.Join(parts, ", ")
}

func buildRecommendMessages(cart []dto.CartItem) []llm.Message {
	prompt := fmt.Sprintf(
		"Suggest up to 5 complementary products (names or keywords) for the user's cart. "+
			"Return ONLY a JSON object {'productNames': [strings]}. Keep names short.\n"+
			"Cart: %s",
		describeCart(cart),
	)

	return []llm.Message{
		{Role: llm.RoleSystem, Content: "You recommend relevant retail products succinctly."},
		{Role: llm.RoleUser, Content: prompt},
	}
}

package content

import (
	"fmt"
	"strings"
)

func domainRecommendationPrompt(answers []QuizAnswer) string {
	var qa strings.Builder
	for i, a := range answers {
		fmt.Fprintf(&qa, "%d. %s\n   Answer: %s\n\n", i+1, a.Question, a.Answer)
	}

	return `You are an expert engineering career counselor with deep knowledge of technical domains and industry trends.

Analyze these student responses from a domain discovery quiz:

` + qa.String() + `
Based on this information, recommend the top 3 technical engineering domains this student should pursue.

For each recommendation, provide:
1. Domain name
2. Confidence score (0.0 to 1.0) indicating how well the student's profile matches
3. Detailed reasoning explaining why this domain suits them
4. 3-5 specific career paths in this domain
5. Current market demand (Very High, High, Medium, or Low)

Consider:
- Student's interests and passion areas
- Natural strengths and working style
- Problem-solving approaches
- Career environment preferences
- Current industry trends and job market
- Learning curve and prerequisites

Output the recommendations as a JSON array with this exact structure:
{
  "recommendations": [
    {
      "domain": "string",
      "confidence": number,
      "reasoning": "string",
      "careerPaths": ["string"],
      "marketDemand": "string"
    }
  ]
}

Ensure recommendations are practical, well-justified, and ranked by confidence score.`
}

func roadmapPrompt(domain, level string) string {
	return fmt.Sprintf(`You are an expert engineering educator creating comprehensive learning roadmaps.

Create a detailed, structured learning roadmap for: %s

Student Starting Level: %s

Generate a complete roadmap from Beginner to Intermediate to Advanced with 8-12 steps total.

For each step, provide:
1. **id**: Unique identifier (e.g., "step_1", "step_2")
2. **title**: Clear, specific topic name
3. **level**: "Beginner", "Intermediate", or "Advanced"
4. **description**: 2-3 sentences explaining what the student will learn
5. **skills**: Array of 3-5 specific skills/topics to master
6. **estimatedTime**: Realistic time estimate (e.g., "2-3 weeks", "1 month")
7. **resources**: Array of 3-5 learning resources with:
   - type: "video", "article", "course", "book", or "practice"
   - title: Resource name
   - url: Actual URL or "#" if placeholder
   - source: Platform name (YouTube, Coursera, etc.)
8. **practicalTasks**: Array of 2-4 hands-on projects/exercises

Ensure:
- Logical progression with each step building on previous knowledge
- Variety in resource types (videos, articles, documentation, practice)
- Specific, actionable practical tasks
- Realistic time estimates
- Industry-relevant skills

Output as JSON:
{
  "roadmap": [
    {
      "id": "string",
      "title": "string",
      "level": "string",
      "description": "string",
      "skills": ["string"],
      "estimatedTime": "string",
      "resources": [
        {
          "type": "string",
          "title": "string",
          "url": "string",
          "source": "string"
        }
      ],
      "practicalTasks": ["string"]
    }
  ],
  "totalEstimatedTime": "string"
}`, domain, level)
}

func projectSuggestionPrompt(domain, level string) string {
	return fmt.Sprintf(`You are an expert engineering mentor helping students build strong project portfolios.

Generate project ideas for:
- Domain: %s
- Difficulty Level: %s

Provide 5 project ideas suitable for this level.

For each project, include:
1. **title**: Clear, descriptive project name
2. **description**: 2-3 sentences explaining what the project does
3. **skills**: Array of 3-5 technologies/skills used
4. **estimatedTime**: Realistic completion time
5. **difficulty**: Confirm the level (Beginner/Intermediate/Advanced)
6. **githubTips**: 2-3 tips for presenting this project on GitHub (README structure, what to highlight, etc.)

Also provide:
- **portfolioAdvice**: General advice for building a strong portfolio in this domain
  - mustHaveProjects: Number of projects to have
  - recommendedTechnologies: Array of key technologies to showcase
  - githubProfileTips: Array of 3-5 tips for the overall GitHub profile
  - resumeHighlights: Array of 3-5 points to emphasize on resume

Output as JSON:
{
  "projects": [
    {
      "title": "string",
      "description": "string",
      "skills": ["string"],
      "estimatedTime": "string",
      "difficulty": "string",
      "githubTips": ["string"]
    }
  ],
  "portfolioAdvice": {
    "mustHaveProjects": number,
    "recommendedTechnologies": ["string"],
    "githubProfileTips": ["string"],
    "resumeHighlights": ["string"]
  }
}`, domain, level)
}

func mentorPrompt(message string, history []ChatMessage, userCtx UserContext) string {
	// keep last 5 messages for context
	if len(history) > 5 {
		history = history[len(history)-5:]
	}
	lines := make([]string, 0, len(history))
	for _, msg := range history {
		who := "Mentor"
		if msg.Sender == "user" {
			who = "Student"
		}
		lines = append(lines, who+": "+msg.Message)
	}
	historyText := strings.Join(lines, "\n")
	if historyText == "" {
		historyText = "This is the start of the conversation"
	}

	domain := userCtx.SelectedDomain
	if domain == "" {
		domain = "Not selected yet"
	}
	step := userCtx.CurrentStep
	if step == "" {
		step = "Just starting"
	}

	return fmt.Sprintf(`You are a friendly, knowledgeable senior engineering mentor helping first-year college students navigate their learning journey.

**Student Context:**
- Selected Domain: %s
- Current Learning Step: %s

**Recent Conversation:**
%s

**Student's New Question:**
%s

**Your Role:**
1. Provide clear, beginner-friendly explanations
2. Use analogies and real-world examples when explaining complex concepts
3. Be encouraging and supportive
4. Suggest specific resources when helpful (courses, documentation, practice platforms)
5. Ask follow-up questions to deepen understanding
6. Keep responses concise (2-4 paragraphs max)
7. Use markdown formatting for code examples, lists, and emphasis

**Response Guidelines:**
- If asked about a concept: Explain simply with examples
- If asked for resources: Suggest 2-3 high-quality options
- If asked about career: Give realistic, actionable advice
- If asked for debugging help: Guide them through the problem-solving process
- If student seems stuck: Encourage and provide alternative approaches

Respond naturally and conversationally. Format your response in markdown.`, domain, step, historyText, message)
}

package remix

import "github.com/ahndee-p/remixer/internal/model"

const (
	// ItemSeparator splits a tweets response into items. A literal occurrence in
	// the model output always splits; there is no escaping.
	ItemSeparator = "|||"

	tweetsInstruction  = "You are a social media expert and ghostwriter. You work for a popular blogger and your job is to take their blog post and come up with a variety of tweets to share ideas from the blog post. Since you are a ghostwriter, make sure to follow the style, tone and voice of the blog post as closely as possible. Remember tweets cannot be longer than 280 characters. Return exactly 5 tweets, with each tweet separated by " + ItemSeparator + ". Do not use hashtags or emojis. Do not number the tweets or add any additional formatting. Here is the blog post:"
	formalInstruction  = "Please rewrite the following text in a more formal and professional tone while maintaining its core message:"
	casualInstruction  = "Please rewrite the following text in a more casual and conversational tone while maintaining its core message:"
	defaultInstruction = "Please remix the following text:"
)

var instructions = map[model.Kind]string{
	model.KindTweets: tweetsInstruction,
	model.KindFormal: formalInstruction,
	model.KindCasual: casualInstruction,
}

// Instruction is total: kinds without an entry get the generic instruction.
func Instruction(kind model.Kind) string {
	if instruction, ok := instructions[kind]; ok {
		return instruction
	}
	return defaultInstruction
}

func BuildPrompt(kind model.Kind, sourceText string) string {
	return Instruction(kind) + "\n\n" + sourceText
}

package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rllL1/portfolio/internal/domain"
)

func TestSendLiveChatRequest_Validate(t *testing.T) {
	msg, err := (&domain.SendLiveChatRequest{Message: "  hi there "}).Validate()
	require.NoError(t, err)
	assert.Equal(t, "hi there", msg.Message)
	assert.Equal(t, domain.VisitorDisplayName, msg.SenderName)
	assert.Equal(t, domain.SenderVisitor, msg.SenderKind)
	assert.Nil(t, msg.SenderEmail)

	msg, err = (&domain.SendLiveChatRequest{
		Message:     "hello",
		SenderName:  "Jane",
		SenderEmail: strPtr("jane@example.com"),
	}).Validate()
	require.NoError(t, err)
	assert.Equal(t, "Jane", msg.SenderName)
	assert.Equal(t, "jane@example.com", *msg.SenderEmail)

	_, err = (&domain.SendLiveChatRequest{Message: "   "}).Validate()
	assert.True(t, domain.IsValidationError(err))

	_, err = (&domain.SendLiveChatRequest{Message: "hi", SenderEmail: strPtr("not-an-email")}).Validate()
	assert.Error(t, err)

	_, err = (&domain.SendLiveChatRequest{Message: strings.Repeat("x", 2001)}).Validate()
	assert.Error(t, err)
}

func TestAdminReplyRequest_Validate(t *testing.T) {
	msg, err := (&domain.AdminReplyRequest{Message: "Thanks!"}).Validate()
	require.NoError(t, err)
	assert.Equal(t, domain.AdminDisplayName, msg.SenderName)
	assert.Equal(t, domain.SenderAdmin, msg.SenderKind)

	_, err = (&domain.AdminReplyRequest{Message: "\n\t"}).Validate()
	assert.Error(t, err)
}

func TestAssistantRequest_Validate(t *testing.T) {
	msg, err := (&domain.AssistantRequest{Message: "What does Ron build?"}).Validate()
	require.NoError(t, err)
	assert.Equal(t, "What does Ron build?", msg)

	_, err = (&domain.AssistantRequest{}).Validate()
	require.Error(t, err)
	assert.Equal(t, "validation error: Message is required", err.Error())

	_, err = (&domain.AssistantRequest{Message: "   "}).Validate()
	assert.Error(t, err)
}

func TestChatValidation_CountsCharacters(t *testing.T) {
	// 2000 three-byte runes fit the limit even though they are 6000 bytes
	accented := strings.Repeat("é", 2000)
	kanji := strings.Repeat("漢", 2000)

	msg, err := (&domain.SendLiveChatRequest{Message: kanji, SenderName: strings.Repeat("ñ", 100)}).Validate()
	require.NoError(t, err)
	assert.Equal(t, kanji, msg.Message)

	_, err = (&domain.AdminReplyRequest{Message: accented}).Validate()
	assert.NoError(t, err)

	reply, err := (&domain.AssistantRequest{Message: kanji}).Validate()
	require.NoError(t, err)
	assert.Equal(t, kanji, reply)

	_, err = (&domain.SendLiveChatRequest{Message: kanji + "漢"}).Validate()
	assert.True(t, domain.IsValidationError(err))

	_, err = (&domain.AssistantRequest{Message: kanji + "漢"}).Validate()
	assert.True(t, domain.IsValidationError(err))

	_, err = (&domain.SendLiveChatRequest{Message: "hi", SenderName: strings.Repeat("ñ", 101)}).Validate()
	assert.True(t, domain.IsValidationError(err))
}

func TestSubmitContactRequest_CountsCharacters(t *testing.T) {
	msg, err := (&domain.SubmitContactRequest{
		Name:    strings.Repeat("ü", 255),
		Email:   "jane@example.com",
		Message: strings.Repeat("漢", 5000),
	}).Validate()
	require.NoError(t, err)
	assert.Len(t, []rune(msg.Message), 5000)

	_, err = (&domain.SubmitContactRequest{
		Name:    "Jane",
		Email:   "jane@example.com",
		Message: strings.Repeat("漢", 5001),
	}).Validate()
	assert.True(t, domain.IsValidationError(err))
}

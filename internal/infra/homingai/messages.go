package homingai

import (
	"fmt"

	"golang.org/x/text/language"
)

// Messages holds user-facing failure strings for one language.
type Messages struct {
	ServerUnavailable string
	CannotConnect     string
	Unexpected        string
	RemoteError       string
	UnknownError      string
}

// RemoteFailure formats an application-level error reported by the service.
func (m Messages) RemoteFailure(msg string) string {
	if msg == "" {
		msg = m.UnknownError
	}
	return fmt.Sprintf(m.RemoteError, msg)
}

var supportedTags = []language.Tag{
	language.SimplifiedChinese,
	language.English,
}

var matcher = language.NewMatcher(supportedTags)

var catalog = map[language.Tag]Messages{
	language.SimplifiedChinese: {
		ServerUnavailable: "抱歉，服务器连接失败。",
		CannotConnect:     "抱歉，无法连接到服务器。",
		Unexpected:        "抱歉，处理请求时出现意外错误。",
		RemoteError:       "抱歉，出现错误: %s",
		UnknownError:      "未知错误",
	},
	language.English: {
		ServerUnavailable: "Sorry, the server connection failed.",
		CannotConnect:     "Sorry, the server could not be reached.",
		Unexpected:        "Sorry, an unexpected error occurred while processing the request.",
		RemoteError:       "Sorry, an error occurred: %s",
		UnknownError:      "unknown error",
	},
}

// speechMessages overrides the connection text for speech recognition.
var speechMessages = map[language.Tag]string{
	language.SimplifiedChinese: "语音识别服务连接失败，请检查网络或API密钥",
	language.English:           "Could not reach the speech recognition service; check the network or API key.",
}

// MessagesFor picks the closest catalog for a BCP 47 tag. Unknown or
// malformed tags fall back to Simplified Chinese.
func MessagesFor(lang string) Messages {
	return catalog[matchTag(lang)]
}

func speechMessagesFor(lang string) Messages {
	tag := matchTag(lang)
	m := catalog[tag]
	m.CannotConnect = speechMessages[tag]
	return m
}

func matchTag(lang string) language.Tag {
	tag, err := language.Parse(lang)
	if err != nil {
		return supportedTags[0]
	}
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return supportedTags[0]
	}
	return supportedTags[index]
}

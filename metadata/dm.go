package metadata

import "github.com/Netflix/photon-sub001/pkg/types"

// TextBasedDMFramework is a descriptive framework pointing at one text object.
type TextBasedDMFramework struct {
	SetHeader
	TextBasedObject types.UID `json:"text_based_object,omitzero"`
}

func (f *TextBasedDMFramework) decodeItem(ul types.UL, v []byte) (bool, error) {
	if ul == ElemTextBasedObject {
		return true, decodeUID(v, &f.TextBasedObject)
	}
	return f.SetHeader.decodeItem(ul, v)
}

// TextBasedObject describes text metadata carried in a generic stream.
type TextBasedObject struct {
	SetHeader
	TextMIMEMediaType       string `json:"text_mime_media_type"`
	RFC5646TextLanguageCode string `json:"rfc5646_text_language_code"`
	TextDataDescription     string `json:"text_data_description,omitempty"`
	GenericStreamID         uint32 `json:"generic_stream_id,omitempty"`
}

func (o *TextBasedObject) decodeItem(ul types.UL, v []byte) (bool, error) {
	switch ul {
	case ElemTextMIMEMediaType:
		return true, decodeISO8859(v, &o.TextMIMEMediaType)
	case ElemRFC5646TextLanguageCode:
		return true, decodeISO8859(v, &o.RFC5646TextLanguageCode)
	case ElemTextDataDescription:
		return true, decodeUTF16(v, &o.TextDataDescription)
	case ElemGenericStreamID:
		return true, decodeU32(v, &o.GenericStreamID)
	}
	return o.SetHeader.decodeItem(ul, v)
}

// DescriptiveFramework stands in for descriptive sets of schemes that are
// not modelled. Their items are kept verbatim.
type DescriptiveFramework struct {
	SetHeader
	Items []RawItem `json:"items,omitempty"`
}

func (f *DescriptiveFramework) addRaw(it RawItem) { f.Items = append(f.Items, it) }

func (u *Unknown) addRaw(it RawItem) { u.Items = append(u.Items, it) }

// rawKeeper is implemented by records that retain items they do not model.
type rawKeeper interface {
	addRaw(RawItem)
}

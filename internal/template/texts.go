package template

// Texts is a node of the inline content tree.
type Texts interface {
	texts()
}

// Text is a literal.
type Text string

// Field selects a value from the player state.
type Field int

const (
	CurrentElapsed Field = iota
	CurrentDuration
	CurrentFile
	CurrentTitle
	CurrentArtist
	CurrentAlbum
	QueueDuration
	QueueFile
	QueueTitle
	QueueArtist
	QueueAlbum
	Query
)

var fieldNames = map[string]Field{
	"current_elapsed":  CurrentElapsed,
	"current_duration": CurrentDuration,
	"current_file":     CurrentFile,
	"current_title":    CurrentTitle,
	"current_artist":   CurrentArtist,
	"current_album":    CurrentAlbum,
	"queue_duration":   QueueDuration,
	"queue_file":       QueueFile,
	"queue_title":      QueueTitle,
	"queue_artist":     QueueArtist,
	"queue_album":      QueueAlbum,
	"query":            Query,
}

// Styled applies modifiers to its content only.
type Styled struct {
	Mods    []StyleMod
	Content Texts
}

// Parts concatenates its children in order.
type Parts []Texts

// If picks Then or Else. A nil Else renders nothing.
type If struct {
	Cond Condition
	Then Texts
	Else Texts
}

func (Text) texts()    {}
func (Field) texts()   {}
func (*Styled) texts() {}
func (Parts) texts()   {}
func (*If) texts()     {}

// Condition is a node of the predicate tree.
type Condition interface {
	condition()
}

// Predicate tests one flag of the render context.
type Predicate int

const (
	Repeat Predicate = iota
	Random
	Single
	Oneshot
	Consume
	Playing
	Paused
	Stopped
	TitleExist
	ArtistExist
	AlbumExist
	QueueTitleExist
	QueueCurrent
	Selected
	Searching
	Filtered
)

var predicateNames = map[string]Predicate{
	"repeat":            Repeat,
	"random":            Random,
	"single":            Single,
	"oneshot":           Oneshot,
	"consume":           Consume,
	"playing":           Playing,
	"paused":            Paused,
	"stopped":           Stopped,
	"title_exist":       TitleExist,
	"artist_exist":      ArtistExist,
	"album_exist":       AlbumExist,
	"queue_title_exist": QueueTitleExist,
	"queue_current":     QueueCurrent,
	"selected":          Selected,
	"searching":         Searching,
	"filtered":          Filtered,
}

type Not struct{ Cond Condition }

type And struct{ Left, Right Condition }

type Or struct{ Left, Right Condition }

type Xor struct{ Left, Right Condition }

func (Predicate) condition() {}
func (*Not) condition()      {}
func (*And) condition()      {}
func (*Or) condition()       {}
func (*Xor) condition()      {}

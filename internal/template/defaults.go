package template

// Default returns the layout used when the config file has none: a header
// line, the queue, and a status line with the playback flags on the right.
func Default() Widget {
	return &Rows{Children: []Constrained[Widget]{
		{Sizing: Fixed, N: 1, Value: &Columns{Children: []Constrained[Widget]{
			header(12, "Title", 122),
			header(10, "Artist", 158),
			header(10, "Album", 194),
			header(1, "Time", 230),
		}}},
		{Sizing: Min, N: 0, Value: &Queue{Columns: []Column{
			queueColumn(12, QueueTitle, 75),
			queueColumn(10, QueueArtist, 111),
			queueColumn(10, QueueAlbum, 147),
			queueColumn(1, QueueDuration, 183),
		}}},
		{Sizing: Fixed, N: 1, Value: &Columns{Children: []Constrained[Widget]{
			{Sizing: Min, N: 0, Value: &Textbox{Content: statusLine()}},
			{Sizing: Fixed, N: 7, Value: &Textbox{Align: AlignRight, Content: flags()}},
		}}},
	}}
}

func header(weight int, label string, color uint8) Constrained[Widget] {
	return Constrained[Widget]{
		Sizing: Ratio,
		N:      weight,
		Value: &Textbox{Content: &Styled{
			Mods:    []StyleMod{Fg(Indexed(color)), Add(Bold)},
			Content: Text(label),
		}},
	}
}

func queueColumn(weight int, field Field, color uint8) Column {
	return Column{
		Item: Constrained[Texts]{
			Sizing: Ratio,
			N:      weight,
			Value: &If{
				Cond: QueueCurrent,
				Then: &Styled{Mods: []StyleMod{Add(Italic)}, Content: field},
				Else: field,
			},
		},
		Style:         []StyleMod{Fg(Indexed(color))},
		SelectedStyle: []StyleMod{Fg(Indexed(0)), Bg(Indexed(color)), Add(Bold)},
	}
}

func fg(color uint8, t Texts) Texts {
	return &Styled{Mods: []StyleMod{Fg(Indexed(color))}, Content: t}
}

func statusLine() Texts {
	searching := Parts{
		fg(113, Text("Searching: ")),
		fg(185, Query),
		fg(185, Text("⎸")),
	}

	progress := fg(113, Parts{
		&If{Cond: Playing, Then: Text("[playing: "), Else: Text("[paused:  ")},
		CurrentElapsed,
		Text("/"),
		CurrentDuration,
		Text("] "),
	})

	album := &If{Cond: AlbumExist, Then: Parts{fg(216, Text(" ◆ ")), fg(221, CurrentAlbum)}}
	artist := &If{Cond: ArtistExist, Then: Parts{fg(216, Text(" ◆ ")), fg(185, CurrentArtist), album}}
	track := &If{
		Cond: TitleExist,
		Then: Parts{fg(149, CurrentTitle), artist},
		Else: fg(185, CurrentFile),
	}

	return &Styled{
		Mods: []StyleMod{Add(Bold)},
		Content: &If{
			Cond: Searching,
			Then: searching,
			Else: &If{Cond: &Not{Cond: Stopped}, Then: Parts{progress, track}},
		},
	}
}

func flags() Texts {
	return fg(81, Parts{
		Text("["),
		&If{Cond: Repeat, Then: Text("@")},
		&If{Cond: Random, Then: Text("#")},
		&If{Cond: Single, Then: Text("^"), Else: &If{Cond: Oneshot, Then: Text("!")}},
		&If{Cond: Consume, Then: Text("*")},
		Text("]"),
	})
}

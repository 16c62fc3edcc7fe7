package tui

// syncStateToComponents copies session state into the components after a
// load, a reload or a category change
func (m *Model) syncStateToComponents() {
	m.sidebar.SetCategories(m.sess.Categories(), m.sess.Current())
	m.home.SetWelcome(m.sess.Welcome())
	m.editor.Refresh()
	m.statusBar.SetLeftContent(m.sess.Path())

	// Nothing to edit any more
	if m.focus == editorPane && len(m.editor.Rows()) == 0 {
		m.focusPane(sidebarPane)
	}
}
